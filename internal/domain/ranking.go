package domain

// DefaultTopProductsLimit é o tamanho padrão do ranking de produtos
const DefaultTopProductsLimit = 10

// ProductCount é uma posição do ranking de produtos mais vendidos
type ProductCount struct {
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
}

// ValueCount é a contagem de ocorrências de um valor qualquer
// (produto, vendedor, unidade)
type ValueCount struct {
	Value string
	Count int
}
