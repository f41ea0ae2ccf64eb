package entity

type OrderSource string

const (
	SourceApp    OrderSource = "app"
	SourceGrab   OrderSource = "grab"
	SourceShopee OrderSource = "shopee"
	SourceXanhSM OrderSource = "xanhsm"
)

func (s OrderSource) Valid() bool {
	switch s {
	case SourceApp, SourceGrab, SourceShopee, SourceXanhSM:
		return true
	}
	return false
}
