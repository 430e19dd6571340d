package backend

import (
	"context"
	"net/url"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// ListCategories fetches the top-level ticket categories.
func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	var resp struct {
		Options []domain.Category `json:"options"`
	}
	if err := c.get(ctx, token, "/options/category", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}

// ListSubcategories fetches the subcategories of one category. The category
// must already be known, so this call always follows a category fetch.
func (c *Client) ListSubcategories(ctx context.Context, token, categoryID string) ([]domain.Subcategory, error) {
	query := url.Values{"category_id": {categoryID}}
	var resp struct {
		Options []domain.Subcategory `json:"options"`
	}
	if err := c.get(ctx, token, "/options/category", query, &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}

// ListSeverities fetches the configured severities.
func (c *Client) ListSeverities(ctx context.Context, token string) ([]domain.Severity, error) {
	var resp struct {
		Severity []domain.Severity `json:"severity"`
	}
	if err := c.get(ctx, token, "/options/severity", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Severity, nil
}

// ListSLAs fetches the configured SLAs.
func (c *Client) ListSLAs(ctx context.Context, token string) ([]domain.SLA, error) {
	var resp struct {
		SLAs []domain.SLA `json:"slas"`
	}
	if err := c.get(ctx, token, "/options/sla", nil, &resp); err != nil {
		return nil, err
	}
	return resp.SLAs, nil
}
