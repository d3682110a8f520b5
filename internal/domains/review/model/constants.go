package model

const (
	MinRating = 1
	MaxRating = 5

	MaxNameLength    = 100
	MaxCommentLength = 2000

	DefaultPageLimit = 10
	MaxPageLimit     = 50
)
