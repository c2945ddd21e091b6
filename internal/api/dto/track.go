package dto

type TrackArticleViewDTO struct {
	ArticleID uint64 `json:"articleId" binding:"required" validate:"required,min=1"`
}

type TrackArticleShareDTO struct {
	ArticleID uint64  `json:"articleId" binding:"required" validate:"required,min=1"`
	Platform  *string `json:"platform" validate:"omitempty,max=32"`
}
