package public

type galleryReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type imageResponse struct {
	Name    string `json:"name"`
	DataURL string `json:"dataURL"`
}
