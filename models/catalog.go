// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Backend collections that make up a store catalog.
const (
	CollectionProdutos   = "produtos"
	CollectionCategorias = "categorias"
	CollectionPosts      = "posts"
)

// ProductPlaceholderURL is shown for products without a main photo.
const ProductPlaceholderURL = "https://placehold.co/300"

// Produto is a catalog item of a store.
type Produto struct {
	ID            ID      `json:"id"`
	Status        string  `json:"status"`
	Nome          string  `json:"nome"`
	Descricao     string  `json:"descricao"`
	Preco         Decimal `json:"preco"`
	FotoPrincipal string  `json:"foto_principal"`
	Destaque      bool    `json:"destaque"`
	Categoria     ID      `json:"categoria"`
	Loja          ID      `json:"loja"`

	ImagemURL string `json:"-"`
}

// Categoria groups products of a store.
type Categoria struct {
	ID    ID     `json:"id"`
	Nome  string `json:"nome"`
	Ordem int    `json:"ordem"`
	Loja  ID     `json:"loja"`
}

// Post is a blog entry of a store.
type Post struct {
	ID          ID     `json:"id"`
	Titulo      string `json:"titulo"`
	Resumo      string `json:"resumo"`
	Capa        string `json:"capa"`
	DateCreated string `json:"date_created"`
	Loja        ID     `json:"loja"`

	CapaURL string `json:"-"`
	Data    string `json:"-"`
}

// Storefront is everything the public store page renders.
type Storefront struct {
	Loja       Loja
	Layout     []string
	Categorias []Categoria
	Produtos   []Produto
	Novidades  []Produto
	Posts      []Post

	// CategoriaSelecionada is the category filter applied to Produtos, if any.
	CategoriaSelecionada string
}

// StoreDashboard is the summary shown on the store admin panel.
type StoreDashboard struct {
	Loja            Loja
	TotalProdutos   int
	TotalDestaques  int
	TotalCategorias int
	UltimosPosts    []Post
}
