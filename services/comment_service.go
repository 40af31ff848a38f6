package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

const commentsEnabledKey = "comments_enabled"

type CommentService interface {
	GetComments(status models.CommentStatus) ([]models.Comment, error)
	ApproveComment(id uint) error
	DeleteComment(id uint) error
	ToggleComments(enabled bool) error
	CommentsEnabled() (bool, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	settingRepo repositories.SettingRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, settingRepo repositories.SettingRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		settingRepo: settingRepo,
	}
}

func (s *commentService) GetComments(status models.CommentStatus) ([]models.Comment, error) {
	return s.commentRepo.GetList(status)
}

func (s *commentService) ApproveComment(id uint) error {
	if err := s.commentRepo.Approve(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *commentService) DeleteComment(id uint) error {
	if err := s.commentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

// ToggleComments persists the sitewide comments switch in the settings
// store.
func (s *commentService) ToggleComments(enabled bool) error {
	return s.settingRepo.Upsert(commentsEnabledKey, strconv.FormatBool(enabled))
}

// CommentsEnabled reports the persisted toggle, defaulting to enabled when
// the key has never been written.
func (s *commentService) CommentsEnabled() (bool, error) {
	setting, err := s.settingRepo.Get(commentsEnabledKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}

	enabled, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return true, nil
	}
	return enabled, nil
}
