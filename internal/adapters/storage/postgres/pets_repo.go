package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"lar-amigo/internal/domain/pets"
)

// PetsRepo lee el catálogo espejado en la tabla pets (ver migrations/).
type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, name,
	species, breed, age, size, gender,
	description, image_ref`

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

// SeedCatalog reemplaza el contenido de pets por el catálogo dado, conservando el orden.
func SeedCatalog(ctx context.Context, db *sql.DB, catalog []pets.Pet) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pets`); err != nil {
		return fmt.Errorf("postgres: clear pets: %w", err)
	}

	for i, p := range catalog {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pets (
				position, id, name,
				species, breed, age, size, gender,
				description, image_ref
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`,
			i,
			p.ID,
			p.Name,
			string(p.Species),
			p.Breed,
			string(p.Age),
			string(p.Size),
			string(p.Gender),
			p.Description,
			p.ImageRef,
		); err != nil {
			return fmt.Errorf("postgres: insert pet %q: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p                          pets.Pet
		species, age, size, gender string
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&species,
		&p.Breed,
		&age,
		&size,
		&gender,
		&p.Description,
		&p.ImageRef,
	); err != nil {
		return pets.Pet{}, err
	}

	// los CHECK de la tabla ya restringen los valores; igual validamos al leer
	p.Species = pets.Species(species)
	p.Age = pets.Age(age)
	p.Size = pets.Size(size)
	p.Gender = pets.Gender(gender)
	if !p.Species.Valid() || !p.Age.Valid() || !p.Size.Valid() || !p.Gender.Valid() {
		return pets.Pet{}, fmt.Errorf("postgres: pet %q has invalid enum values", p.ID)
	}
	return p, nil
}
