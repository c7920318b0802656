package dto

import "replydesk.app/server/internal/model"

type InstagramConnectRequest struct {
	Code string `json:"code" binding:"required"`
}

type InstagramAccountResponse struct {
	Account model.InstagramAccount `json:"account"`
}

type InstagramStatusResponse struct {
	Connected bool                    `json:"connected"`
	Account   *model.InstagramAccount `json:"account,omitempty"`
}

type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}
