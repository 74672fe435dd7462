package inquiry

import "time"

// ContactRequest binds both JSON and form posts from the public contact form.
type ContactRequest struct {
	Name               string   `json:"name" form:"name" binding:"required,max=100"`
	Email              string   `json:"email" form:"email" binding:"required,email,max=254"`
	Phone              string   `json:"phone" form:"phone" binding:"max=20"`
	Company            string   `json:"company" form:"company" binding:"max=200"`
	InquiryType        string   `json:"inquiry_type" form:"inquiry_type"`
	Subject            string   `json:"subject" form:"subject" binding:"required,max=200"`
	Message            string   `json:"message" form:"message" binding:"required"`
	ServicesInterested []string `json:"services_interested" form:"services_interested"`
	ProjectBudget      string   `json:"project_budget" form:"project_budget" binding:"max=100"`
	ProjectTimeline    string   `json:"project_timeline" form:"project_timeline" binding:"max=100"`
}

type Receipt struct {
	ID string `json:"id"`
}

type UpdateRequest struct {
	Priority      *string `json:"priority"`
	ResponseNotes *string `json:"response_notes"`
	IsResponded   *bool   `json:"is_responded"`
}

type ListFilter struct {
	InquiryType string
	Priority    string
	IsResponded *bool
	Search      string
	Page        int
	PageSize    int
}

type ServiceSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type ResponderSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type InquiryResponse struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Company            string            `json:"company"`
	InquiryType        string            `json:"inquiry_type"`
	Priority           string            `json:"priority"`
	Subject            string            `json:"subject"`
	Message            string            `json:"message"`
	ServicesInterested []ServiceSummary  `json:"services_interested"`
	ProjectBudget      string            `json:"project_budget"`
	ProjectTimeline    string            `json:"project_timeline"`
	IsResponded        bool              `json:"is_responded"`
	RespondedBy        *ResponderSummary `json:"responded_by"`
	ResponseDate       *time.Time        `json:"response_date"`
	ResponseNotes      string            `json:"response_notes"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func MapInquiry(i ContactInquiry) InquiryResponse {
	services := make([]ServiceSummary, 0, len(i.ServicesInterested))
	for _, s := range i.ServicesInterested {
		services = append(services, ServiceSummary{ID: s.ID.String(), Title: s.Title, Slug: s.Slug})
	}

	var responder *ResponderSummary
	if i.RespondedBy != nil {
		responder = &ResponderSummary{
			ID:    i.RespondedBy.ID.String(),
			Name:  i.RespondedBy.Name,
			Email: i.RespondedBy.Email,
		}
	}

	return InquiryResponse{
		ID:                 i.ID.String(),
		Name:               i.Name,
		Email:              i.Email,
		Phone:              i.Phone,
		Company:            i.Company,
		InquiryType:        string(i.InquiryType),
		Priority:           string(i.Priority),
		Subject:            i.Subject,
		Message:            i.Message,
		ServicesInterested: services,
		ProjectBudget:      i.ProjectBudget,
		ProjectTimeline:    i.ProjectTimeline,
		IsResponded:        i.IsResponded,
		RespondedBy:        responder,
		ResponseDate:       i.ResponseDate,
		ResponseNotes:      i.ResponseNotes,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
	}
}

func MapInquiries(rows []ContactInquiry) []InquiryResponse {
	res := make([]InquiryResponse, 0, len(rows))
	for _, i := range rows {
		res = append(res, MapInquiry(i))
	}
	return res
}
