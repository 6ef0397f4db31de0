package utils

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps Page*Size within an int.
	MaxPage = math.MaxInt / MaxPageSize
)

// PageRequest is a zero-based page index plus a page size.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest validates page and size and returns the request.
func NewPageRequest(page, size int) (PageRequest, error) {
	req := PageRequest{Page: page, Size: size}
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Page, validation.Min(0), validation.Max(MaxPage)),
		validation.Field(&req.Size, validation.Required, validation.Min(1), validation.Max(MaxPageSize)),
	)
	if err != nil {
		return PageRequest{}, err
	}
	return req, nil
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is a bounded slice of results plus pagination metadata.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPage builds a page for content fetched with req out of total rows.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Number:           req.Page,
		Size:             req.Size,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
		Empty:            len(content) == 0,
	}
}

// MapPage converts every element of p with fn, keeping the metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, fn(item))
	}
	return Page[U]{
		Content:          content,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		Number:           p.Number,
		Size:             p.Size,
		NumberOfElements: p.NumberOfElements,
		First:            p.First,
		Last:             p.Last,
		Empty:            p.Empty,
	}
}
