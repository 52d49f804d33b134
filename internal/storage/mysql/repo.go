package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valCoord(c *domain.Coords, lat bool) any {
	if c == nil {
		return nil
	}
	if lat {
		return c.Lat
	}
	return c.Lon
}

// Repo is the MySQL-backed catalog. It doubles as a CatalogSource for the
// API and as the write target for cmd/syncer.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertBusiness(ctx context.Context, e domain.Entity) error {
	_, err := r.db.ExecContext(ctx, upsertBusinessSQL,
		e.ID, e.Name, string(e.Category), e.Description, e.Address, e.Phone,
		valStr(e.Website), valCoord(e.Coords, true), valCoord(e.Coords, false),
		e.Rating, e.Reviews, e.Image,
	)
	return err
}

func (r *Repo) UpsertAccommodation(ctx context.Context, a domain.Accommodation) error {
	amen, _ := json.Marshal(a.Amenities)
	_, err := r.db.ExecContext(ctx, upsertAccommodationSQL,
		a.ID, a.Name, string(a.Category), a.Description, a.Address, a.Phone,
		valStr(a.Website), valCoord(a.Coords, true), valCoord(a.Coords, false),
		a.Rating, a.Reviews, a.Image,
		a.Price, a.PriceUnit, string(amen), a.MaxGuests, a.CheckInTime, a.CheckOutTime,
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) FetchBusinesses(ctx context.Context) ([]domain.Entity, error) {
	rows, err := r.db.QueryContext(ctx, listBusinessesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) FetchAccommodations(ctx context.Context) ([]domain.Accommodation, error) {
	rows, err := r.db.QueryContext(ctx, listAccommodationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) GetAccommodation(ctx context.Context, id int64) (domain.Accommodation, error) {
	row := r.db.QueryRowContext(ctx, getAccommodationSQL, id)
	a, err := scanAccommodation(row)
	if err == sql.ErrNoRows {
		return domain.Accommodation{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Accommodation{}, err
	}
	return a, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanEntityCols(s scanner, e *domain.Entity, extra ...any) error {
	var (
		website  sql.NullString
		lat, lon sql.NullFloat64
		phone    sql.NullString
		image    sql.NullString
	)
	dest := []any{
		&e.ID, &e.Name, (*string)(&e.Category), &e.Description, &e.Address,
		&phone, &website, &lat, &lon, &e.Rating, &e.Reviews, &image,
	}
	dest = append(dest, extra...)
	if err := s.Scan(dest...); err != nil {
		return err
	}
	if phone.Valid {
		e.Phone = phone.String
	}
	if website.Valid {
		w := website.String
		e.Website = &w
	}
	if lat.Valid && lon.Valid {
		e.Coords = &domain.Coords{Lat: lat.Float64, Lon: lon.Float64}
	}
	if image.Valid {
		e.Image = image.String
	}
	return nil
}

func scanEntity(s scanner) (domain.Entity, error) {
	var e domain.Entity
	err := scanEntityCols(s, &e)
	return e, err
}

func scanAccommodation(s scanner) (domain.Accommodation, error) {
	var (
		a            domain.Accommodation
		amenities    []byte
		priceUnit    sql.NullString
		checkIn, out sql.NullString
	)
	err := scanEntityCols(s, &a.Entity,
		&a.Price, &priceUnit, &amenities, &a.MaxGuests, &checkIn, &out,
	)
	if err != nil {
		return domain.Accommodation{}, err
	}
	_ = json.Unmarshal(amenities, &a.Amenities)
	if priceUnit.Valid {
		a.PriceUnit = priceUnit.String
	}
	if checkIn.Valid {
		a.CheckInTime = checkIn.String
	}
	if out.Valid {
		a.CheckOutTime = out.String
	}
	if a.MaxGuests < 1 {
		a.MaxGuests = 1
	}
	return a, nil
}
