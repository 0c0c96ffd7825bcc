package models

type PricePackage struct {
	Order    int      `json:"order" yaml:"order"`
	Title    *string  `json:"title" yaml:"title"`
	Price    *string  `json:"price" yaml:"price"`
	Features []string `json:"features" yaml:"features"`
}
