package entity

type CheckType string

const (
	CheckIn  CheckType = "in"
	CheckOut CheckType = "out"
)

func (t CheckType) Valid() bool {
	return t == CheckIn || t == CheckOut
}
