package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"github.com/bagdasarian/volunteer-app/internal/repository"
)

var errProjectTitleExists = domain.NewConflictError("project with this title already exists")

type projectService struct {
	tx              repository.Transactor
	projectRepo     repository.ProjectRepository
	participantRepo repository.MembershipRepository
	userRepo        repository.UserRepository
}

// NewProjectService создает новый экземпляр ProjectService
func NewProjectService(
	tx repository.Transactor,
	projectRepo repository.ProjectRepository,
	participantRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
) ProjectService {
	return &projectService{
		tx:              tx,
		projectRepo:     projectRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
	}
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "project")
	}
	return project, nil
}

func (s *projectService) ListByOrganizer(ctx context.Context, organizerID int64) ([]*domain.Project, error) {
	return s.projectRepo.ListByOrganizer(ctx, organizerID)
}

// ListParticipantsByOrganizer возвращает всех участников проектов организатора
func (s *projectService) ListParticipantsByOrganizer(ctx context.Context, organizerID int64) ([]*domain.User, error) {
	return s.projectRepo.ListParticipantsByOrganizer(ctx, organizerID)
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	title, err := requireText(input.Title, "title")
	if err != nil {
		return nil, err
	}
	if input.OrganizerID == nil {
		return nil, domain.NewValidationError("organizer.id is required")
	}
	if err := s.resolveOrganizer(ctx, *input.OrganizerID); err != nil {
		return nil, err
	}

	exists, err := s.projectRepo.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errProjectTitleExists
	}

	project := &domain.Project{
		Title:            title,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		OrganizerID:      *input.OrganizerID,
		CreatedAt:        time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, s.translateWriteError(err, project.OrganizerID)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if value, ok := patch.Title.Get(); ok {
		title, err := requireText(value, "title")
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(title, project.Title) {
			exists, err := s.projectRepo.ExistsByTitle(ctx, title)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, errProjectTitleExists
			}
		}
		project.Title = title
	}
	if value, ok := patch.ShortDescription.Get(); ok {
		project.ShortDescription = value
	}
	if value, ok := patch.Description.Get(); ok {
		project.Description = value
	}
	if value, ok := patch.OrganizerID.Get(); ok {
		if err := s.resolveOrganizer(ctx, value); err != nil {
			return nil, err
		}
		project.OrganizerID = value
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, s.translateWriteError(notFound(err, "project"), project.OrganizerID)
	}
	return project, nil
}

// Delete удаляет участников проекта явно, задачи удаляются каскадом в хранилище
func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.projectRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFoundError("project")
		}

		if err := s.participantRepo.DeleteByParent(ctx, id); err != nil {
			return err
		}
		return notFound(s.projectRepo.Delete(ctx, id), "project")
	})
}

func (s *projectService) resolveOrganizer(ctx context.Context, organizerID int64) error {
	exists, err := s.userRepo.ExistsByID(ctx, organizerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("Organizer not found: %d", organizerID)
	}
	return nil
}

func (s *projectService) translateWriteError(err error, organizerID int64) error {
	if errors.Is(err, repository.ErrReference) {
		return domain.NewValidationError("Organizer not found: %d", organizerID)
	}
	return conflict(err, errProjectTitleExists)
}
