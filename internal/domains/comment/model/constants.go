package model

const (
	MinBodyLength = 1
	MaxBodyLength = 2000
)
