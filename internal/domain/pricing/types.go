package pricing

type Category string

const (
	CategoryTable       Category = "table"
	CategoryConsole     Category = "console"
	CategoryWorkstation Category = "workstation"
	CategoryDining      Category = "dining"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTable, CategoryConsole, CategoryWorkstation, CategoryDining:
		return true
	default:
		return false
	}
}

func Categories() []Category {
	return []Category{CategoryTable, CategoryConsole, CategoryWorkstation, CategoryDining}
}
