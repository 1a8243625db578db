package request_models

// SubmitContributionRequest is bound from a multipart form; the optional
// proof image arrives as a separate file part.
type SubmitContributionRequest struct {
	Month      string  `form:"month" binding:"required,datetime=2006-01-02"`
	AmountPaid float64 `form:"amountPaid" binding:"required,gt=0"`
}

type ContributionSummaryQuery struct {
	Month string `form:"month" binding:"required,datetime=2006-01"`
}
