package echo

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

var recipientRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// GenerateEmailRequest asks for a draft based on a company website.
type GenerateEmailRequest struct {
	WebsiteURL    string `json:"website_url"`
	CompanyName   string `json:"company_name,omitempty"`
	SenderName    string `json:"sender_name,omitempty"`
	SenderCompany string `json:"sender_company,omitempty"`
}

// GenerateEmailResponse carries the draft and the profile it was based on.
type GenerateEmailResponse struct {
	EmailSubject string                    `json:"email_subject"`
	EmailBody    string                    `json:"email_body"`
	CompanyInfo  *coldemail.CompanyProfile `json:"company_info"`
}

// SendEmailRequest asks for delivery of an already-drafted email.
type SendEmailRequest struct {
	ToEmail  string   `json:"to_email"`
	Subject  string   `json:"subject"`
	Body     string   `json:"body"`
	FromName string   `json:"from_name,omitempty"`
	CC       []string `json:"cc,omitempty"`
	BCC      []string `json:"bcc,omitempty"`
}

// SendEmailResponse reports the delivery outcome.
type SendEmailResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// GenerateAndSendRequest combines drafting and delivery in one call.
type GenerateAndSendRequest struct {
	WebsiteURL    string   `json:"website_url"`
	ToEmail       string   `json:"to_email"`
	CompanyName   string   `json:"company_name,omitempty"`
	SenderName    string   `json:"sender_name,omitempty"`
	SenderCompany string   `json:"sender_company,omitempty"`
	SenderPhone   string   `json:"sender_phone,omitempty"`
	SenderWebsite string   `json:"sender_website,omitempty"`
	CC            []string `json:"cc,omitempty"`
	BCC           []string `json:"bcc,omitempty"`
}

func (s *Server) handleGenerateEmail(c echo.Context) error {
	var req GenerateEmailRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if !coldemail.ValidateURL(req.WebsiteURL) {
		return Error(c, http.StatusBadRequest, "invalid website URL")
	}

	profile := s.companyProfile(c.Request().Context(), req.WebsiteURL, req.CompanyName)

	sender := s.DefaultSender
	if req.SenderName != "" {
		sender.Name = req.SenderName
	}
	if req.SenderCompany != "" {
		sender.Company = req.SenderCompany
	}

	email, err := s.Generator.Generate(c.Request().Context(), profile, sender)
	if err != nil {
		return Error(c, errorStatus(err), coldemail.ErrorMessage(err))
	}

	return c.JSON(http.StatusOK, GenerateEmailResponse{
		EmailSubject: email.Subject,
		EmailBody:    email.Body,
		CompanyInfo:  profile,
	})
}

func (s *Server) handleSendEmail(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if !recipientRe.MatchString(req.ToEmail) {
		return Error(c, http.StatusBadRequest, "invalid recipient address")
	}
	if s.Sender == nil {
		return Error(c, http.StatusServiceUnavailable, "mail delivery is not configured")
	}

	result, err := s.Sender.Send(c.Request().Context(), coldemail.Message{
		To:       req.ToEmail,
		Subject:  req.Subject,
		Body:     req.Body,
		FromName: req.FromName,
		CC:       req.CC,
		BCC:      req.BCC,
	})
	if err != nil {
		return Error(c, errorStatus(err), coldemail.ErrorMessage(err))
	}

	return c.JSON(http.StatusOK, SendEmailResponse{
		Success: result.Success,
		Message: result.Message,
	})
}

func (s *Server) handleGenerateAndSend(c echo.Context) error {
	var req GenerateAndSendRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if !coldemail.ValidateURL(req.WebsiteURL) {
		return Error(c, http.StatusBadRequest, "invalid website URL")
	}
	if !recipientRe.MatchString(req.ToEmail) {
		return Error(c, http.StatusBadRequest, "invalid recipient address")
	}
	if s.Sender == nil {
		return Error(c, http.StatusServiceUnavailable, "mail delivery is not configured")
	}

	profile := s.companyProfile(c.Request().Context(), req.WebsiteURL, req.CompanyName)

	sender := s.DefaultSender
	if req.SenderName != "" {
		sender.Name = req.SenderName
	}
	if req.SenderCompany != "" {
		sender.Company = req.SenderCompany
	}
	if req.SenderPhone != "" {
		sender.Phone = req.SenderPhone
	}
	if req.SenderWebsite != "" {
		sender.Website = req.SenderWebsite
	}

	email, err := s.Generator.Generate(c.Request().Context(), profile, sender)
	if err != nil {
		return Error(c, errorStatus(err), coldemail.ErrorMessage(err))
	}

	result, err := s.Sender.Send(c.Request().Context(), coldemail.Message{
		To:       req.ToEmail,
		Subject:  email.Subject,
		Body:     email.Body,
		FromName: req.SenderName,
		CC:       req.CC,
		BCC:      req.BCC,
	})
	if err != nil {
		return Error(c, errorStatus(err), coldemail.ErrorMessage(err))
	}

	return c.JSON(http.StatusOK, SendEmailResponse{
		Success: result.Success,
		Message: result.Message,
		Data: map[string]any{
			"company_info":  profile,
			"email_subject": email.Subject,
		},
	})
}

// companyProfile returns the profile for url, consulting the cache when
// one is configured. A supplied company name always overrides the
// scraped one.
func (s *Server) companyProfile(ctx context.Context, url, companyName string) *coldemail.CompanyProfile {
	key := coldemail.CacheKey(coldemail.Domain(url), time.Now())

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key); err == nil {
			s.Logger.Info("using cached profile", "key", key)
			// The cache hands out a shared profile; requests for the
			// same domain run concurrently, so never write to it.
			profile := cached.Clone()
			if companyName != "" {
				profile.Name = companyName
			}
			return profile
		}
	}

	profile, _ := s.Scraper.Scrape(ctx, url, coldemail.ScrapeOptions{CompanyName: companyName})

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, profile); err != nil {
			s.Logger.Warn("failed to cache profile", "key", key, "error", err)
		}
	}
	return profile
}
