package models

import "time"

// AuthorityReview records that an authority reviewed a scheme at a point in time.
type AuthorityReview struct {
	ID         int
	ReviewDate time.Time
	Source     DataSource
}

// SchemeReviews holds the authority reviews of a scheme.
type SchemeReviews struct {
	authorityReviews []AuthorityReview
}

// NewSchemeReviews creates empty reviews.
func NewSchemeReviews() *SchemeReviews {
	return &SchemeReviews{}
}

// AuthorityReviews returns a copy of the reviews in insertion order.
func (r *SchemeReviews) AuthorityReviews() []AuthorityReview {
	return append([]AuthorityReview(nil), r.authorityReviews...)
}

// UpdateAuthorityReview appends a review.
func (r *SchemeReviews) UpdateAuthorityReview(review AuthorityReview) {
	r.authorityReviews = append(r.authorityReviews, review)
}

// UpdateAuthorityReviews appends reviews in the order given.
func (r *SchemeReviews) UpdateAuthorityReviews(reviews ...AuthorityReview) {
	r.authorityReviews = append(r.authorityReviews, reviews...)
}

// LastReviewed returns the latest review date, or nil if the scheme has never been reviewed.
func (r *SchemeReviews) LastReviewed() *time.Time {
	var last *time.Time
	for _, review := range r.authorityReviews {
		if last == nil || review.ReviewDate.After(*last) {
			d := review.ReviewDate
			last = &d
		}
	}
	return last
}
