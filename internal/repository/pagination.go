package repository

import "github.com/Guyuepp/Go-Social-Blog/domain"

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PageVerify clamps a page request to sane bounds.
func PageVerify(p *domain.Pageable) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		p.Size = DefaultPageSize
	}
}
