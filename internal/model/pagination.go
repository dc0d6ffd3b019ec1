package model

type Pagination struct {
	Page int
	Size int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// Pages reports ceil(total/size); an empty result still has one page.
func (p Pagination) Pages(total int) int {
	if total == 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}
