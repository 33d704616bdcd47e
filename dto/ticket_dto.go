package dto

type CreateTicketDTO struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ReplyTicketDTO struct {
	Reply string `json:"reply" binding:"required"`
}

type CreateReviewDTO struct {
	Title   string `json:"title" binding:"required"`
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
