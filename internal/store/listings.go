package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/entity"
	gerr "github.com/jekabolt/sheel/internal/errors"
)

type listingsStore struct {
	*MYSQLStore
}

// Listings returns an object implementing listings interface
func (ms *MYSQLStore) Listings() dependency.Listings {
	return &listingsStore{
		MYSQLStore: ms,
	}
}

const listingColumns = `
	id, owner_id, title, title_ar, description, description_ar, price,
	transaction_type, category, bedrooms, bathrooms, area,
	address, address_ar, city, city_ar,
	contact_name, contact_phone, contact_email,
	features, images, featured, status, views, inquiries,
	created_at, updated_at`

func (ms *MYSQLStore) AddListing(ctx context.Context, l *entity.Listing) error {
	query := `
	INSERT INTO listings (
		id, owner_id, title, title_ar, description, description_ar, price,
		transaction_type, category, bedrooms, bathrooms, area,
		address, address_ar, city, city_ar,
		contact_name, contact_phone, contact_email,
		features, images, featured, status, views, inquiries,
		created_at, updated_at
	) VALUES (
		:id, :ownerId, :title, :titleAr, :description, :descriptionAr, :price,
		:transactionType, :category, :bedrooms, :bathrooms, :area,
		:address, :addressAr, :city, :cityAr,
		:contactName, :contactPhone, :contactEmail,
		:features, :images, :featured, :status, :views, :inquiries,
		:createdAt, :updatedAt
	)`

	_, err := ExecNamed(ctx, ms.db, query, map[string]any{
		"id":              l.ID,
		"ownerId":         l.OwnerID,
		"title":           l.Title,
		"titleAr":         l.TitleAr,
		"description":     l.Description,
		"descriptionAr":   l.DescriptionAr,
		"price":           l.Price,
		"transactionType": l.TransactionType,
		"category":        l.Category,
		"bedrooms":        l.Bedrooms,
		"bathrooms":       l.Bathrooms,
		"area":            l.Area,
		"address":         l.Address,
		"addressAr":       l.AddressAr,
		"city":            l.City,
		"cityAr":          l.CityAr,
		"contactName":     l.ContactName,
		"contactPhone":    l.ContactPhone,
		"contactEmail":    l.ContactEmail,
		"features":        l.Features,
		"images":          l.Images,
		"featured":        l.Featured,
		"status":          l.Status,
		"views":           l.Views,
		"inquiries":       l.Inquiries,
		"createdAt":       l.CreatedAt,
		"updatedAt":       l.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("can't insert listing: %w", err)
	}
	return nil
}

// ListListings returns listings matching p.Where ordered by p.OrderBy.
// A zero OrderBy means newest first; a non-positive limit means no limit.
func (ms *MYSQLStore) ListListings(ctx context.Context, p entity.ListParams) ([]entity.Listing, error) {
	var (
		where  []string
		params = map[string]any{}
	)
	if p.Where.OwnerID != "" {
		where = append(where, "owner_id = :ownerId")
		params["ownerId"] = p.Where.OwnerID
	}
	if p.Where.Status != "" {
		if !entity.IsValidListingStatus(p.Where.Status) {
			return nil, fmt.Errorf("invalid listing status %q", p.Where.Status)
		}
		where = append(where, "status = :status")
		params["status"] = p.Where.Status
	}

	column := p.OrderBy.Column
	if column == "" {
		column = entity.CreatedAt
	}
	if !entity.IsValidSortFactor(string(column)) {
		return nil, fmt.Errorf("invalid sort factor %q", column)
	}
	order := p.OrderBy.Order
	if order == "" {
		order = entity.Descending
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(listingColumns)
	sb.WriteString(" FROM listings")
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	// column and order are whitelisted above
	fmt.Fprintf(&sb, " ORDER BY %s %s, id %s", column, order.String(), order.String())
	if p.Limit > 0 {
		sb.WriteString(" LIMIT :limit")
		params["limit"] = p.Limit
	}

	ls, err := QueryListNamed[entity.Listing](ctx, ms.db, sb.String(), params)
	if err != nil {
		return nil, fmt.Errorf("can't list listings: %w", err)
	}
	return ls, nil
}

func (ms *MYSQLStore) GetListingByID(ctx context.Context, id string) (*entity.Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings WHERE id = :id"
	l, err := QueryNamedOne[entity.Listing](ctx, ms.db, query, map[string]any{
		"id": id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, gerr.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get listing %s: %w", id, err)
	}
	return &l, nil
}

// DeleteListing deletes a listing only when it belongs to ownerID.
func (ms *MYSQLStore) DeleteListing(ctx context.Context, id string, ownerID string) error {
	query := "DELETE FROM listings WHERE id = :id AND owner_id = :ownerId"
	n, err := ExecNamed(ctx, ms.db, query, map[string]any{
		"id":      id,
		"ownerId": ownerID,
	})
	if err != nil {
		return fmt.Errorf("can't delete listing %s: %w", id, err)
	}
	if n == 0 {
		return gerr.ErrListingNotFound
	}
	return nil
}

func (ms *MYSQLStore) IncrementViews(ctx context.Context, id string) error {
	query := "UPDATE listings SET views = views + 1, updated_at = updated_at WHERE id = :id"
	n, err := ExecNamed(ctx, ms.db, query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't increment views of %s: %w", id, err)
	}
	if n == 0 {
		return gerr.ErrListingNotFound
	}
	return nil
}
