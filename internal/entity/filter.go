package entity

type OrderFactor string

const (
	Ascending  OrderFactor = "ASC"
	Descending OrderFactor = "DESC"
)

func (of *OrderFactor) String() string {
	if of != nil {
		if *of == Descending {
			return "DESC"
		}
		return "ASC"
	}
	return "ASC"
}

type SortFactor string

const (
	CreatedAt SortFactor = "created_at"
	UpdatedAt SortFactor = "updated_at"
	Price     SortFactor = "price"
	Views     SortFactor = "views"
)

var validSortFactors = map[SortFactor]bool{
	CreatedAt: true,
	UpdatedAt: true,
	Price:     true,
	Views:     true,
}

func IsValidSortFactor(factor string) bool {
	return validSortFactors[SortFactor(factor)]
}

// ListingWhere narrows a listing query. Empty fields are not applied.
type ListingWhere struct {
	OwnerID string
	Status  ListingStatus
}

// ListingOrderBy defines the listing query order.
type ListingOrderBy struct {
	Column SortFactor
	Order  OrderFactor
}

// ListParams mirrors the record-store list call: where, order by and limit.
type ListParams struct {
	Where   ListingWhere
	OrderBy ListingOrderBy
	Limit   int
}
