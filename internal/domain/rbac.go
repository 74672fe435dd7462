package domain

// EnforceRequest is shared by the rbac package and the middleware so that
// neither has to import the other.
type EnforceRequest struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
