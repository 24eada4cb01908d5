package model

const (
	MinTitleLength = 2
	MaxTitleLength = 100

	// ItemsPerPage là page size cố định của article collection
	ItemsPerPage = 10
)
