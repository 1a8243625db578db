package request_models

import "strings"

type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type AcceptInviteRequest struct {
	MonthlyShareCommitment int    `json:"monthlyShareCommitment" binding:"required,gt=0"`
	PhoneNumber            string `json:"phoneNumber" binding:"required,min=7,max=32"`
	Password               string `json:"password" binding:"required,min=6"`
}

// PasswordPolicyErrors reports the complexity rules the submitted password
// misses: at least one lowercase, uppercase, digit and special character.
func (r AcceptInviteRequest) PasswordPolicyErrors() []string {
	var missing []string
	if !strings.ContainsAny(r.Password, "abcdefghijklmnopqrstuvwxyz") {
		missing = append(missing, "a lowercase letter")
	}
	if !strings.ContainsAny(r.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		missing = append(missing, "an uppercase letter")
	}
	if !strings.ContainsAny(r.Password, "0123456789") {
		missing = append(missing, "a number")
	}
	if !strings.ContainsAny(r.Password, "@$!%*?&") {
		missing = append(missing, "a special character")
	}
	return missing
}
