package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobtrail/internal/models"
)

// JobServiceProvider defines the interface for job services.
type JobServiceProvider interface {
	List(ownerID string, archived bool) ([]models.Job, error)
	Create(ownerID, title, company, location, status, link string) (models.Job, error)
	GetOwned(id, ownerID string) (models.Job, error)
	Update(id, ownerID, title, company, location, status, link string) (models.Job, error)
	UpdateStatus(id, ownerID, status string) (models.Job, error)
	ToggleArchive(id, ownerID string) (models.Job, error)
	Delete(id, ownerID string) error
}

// JobService provides business logic for tracked job applications. Every
// query filters by owner_id so a job belonging to another account behaves
// exactly like a job that does not exist.
type JobService struct {
	db *sql.DB
}

// NewJobService creates a new JobService.
func NewJobService(db *sql.DB) *JobService {
	return &JobService{db: db}
}

const jobColumns = "id, title, company, location, status, link, archived, created_at, owner_id"

func scanJob(row interface{ Scan(...any) error }) (models.Job, error) {
	var job models.Job
	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Status,
		&job.Link, &job.Archived, &job.CreatedAt, &job.OwnerID)
	return job, err
}

func validateJobFields(title, company, location string) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case company == "":
		return fmt.Errorf("%w: company is required", ErrValidation)
	case location == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	return nil
}

// List retrieves the owner's jobs on one side of the archived partition,
// newest first.
func (s *JobService) List(ownerID string, archived bool) ([]models.Job, error) {
	rows, err := s.db.Query(
		"SELECT "+jobColumns+" FROM jobs WHERE owner_id = ? AND archived = ? ORDER BY created_at DESC, id",
		ownerID, archived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Create inserts a new active job owned by ownerID. Title, company and
// location are required; status defaults to models.DefaultStatus.
func (s *JobService) Create(ownerID, title, company, location, status, link string) (models.Job, error) {
	if err := validateJobFields(title, company, location); err != nil {
		return models.Job{}, err
	}
	if status == "" {
		status = models.DefaultStatus
	}

	job := models.Job{
		ID:        uuid.New().String(),
		Title:     title,
		Company:   company,
		Location:  location,
		Status:    status,
		Link:      link,
		Archived:  false,
		CreatedAt: time.Now().UTC(),
		OwnerID:   ownerID,
	}

	stmt, err := s.db.Prepare("INSERT INTO jobs(" + jobColumns + ") VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Job{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(job.ID, job.Title, job.Company, job.Location, job.Status,
		job.Link, job.Archived, job.CreatedAt, job.OwnerID)
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// GetOwned retrieves a single job by ID, validating ownership. A job owned
// by another account fails with the same ErrNotFound as a missing one.
func (s *JobService) GetOwned(id, ownerID string) (models.Job, error) {
	row := s.db.QueryRow("SELECT "+jobColumns+" FROM jobs WHERE id = ? AND owner_id = ?", id, ownerID)
	job, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Job{}, ErrNotFound
		}
		return models.Job{}, err
	}
	return job, nil
}

// Update overwrites the mutable fields of an owned job.
func (s *JobService) Update(id, ownerID, title, company, location, status, link string) (models.Job, error) {
	if err := validateJobFields(title, company, location); err != nil {
		return models.Job{}, err
	}
	if status == "" {
		return models.Job{}, fmt.Errorf("%w: status is required", ErrValidation)
	}

	res, err := s.db.Exec(
		"UPDATE jobs SET title = ?, company = ?, location = ?, status = ?, link = ? WHERE id = ? AND owner_id = ?",
		title, company, location, status, link, id, ownerID)
	if err != nil {
		return models.Job{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Job{}, err
	} else if n == 0 {
		return models.Job{}, ErrNotFound
	}
	return s.GetOwned(id, ownerID)
}

// UpdateStatus overwrites only the status field of an owned job.
func (s *JobService) UpdateStatus(id, ownerID, status string) (models.Job, error) {
	if status == "" {
		return models.Job{}, fmt.Errorf("%w: status is required", ErrValidation)
	}

	res, err := s.db.Exec("UPDATE jobs SET status = ? WHERE id = ? AND owner_id = ?", status, id, ownerID)
	if err != nil {
		return models.Job{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Job{}, err
	} else if n == 0 {
		return models.Job{}, ErrNotFound
	}
	return s.GetOwned(id, ownerID)
}

// ToggleArchive flips the archived flag of an owned job.
func (s *JobService) ToggleArchive(id, ownerID string) (models.Job, error) {
	res, err := s.db.Exec("UPDATE jobs SET archived = NOT archived WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return models.Job{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return models.Job{}, err
	} else if n == 0 {
		return models.Job{}, ErrNotFound
	}
	return s.GetOwned(id, ownerID)
}

// Delete permanently removes an owned job.
func (s *JobService) Delete(id, ownerID string) error {
	res, err := s.db.Exec("DELETE FROM jobs WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}
