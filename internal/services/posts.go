package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/common"
	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/dmitrijs2005/novabiz/internal/store"
	"github.com/google/uuid"
)

// PostService manages the global community feed. Posts are never edited or
// deleted; likes are a bare counter with no per-liker record, so the same
// caller may like a post any number of times.
type PostService interface {
	// List returns all posts, newest first.
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, author *models.User, content, tagsLine string) (*models.Post, error)
	Like(ctx context.Context, id string) error
	AddComment(ctx context.Context, id string, author *models.User, content string) (*models.Comment, error)
}

type postService struct {
	store store.Store
	now   func() time.Time
}

func NewPostService(st store.Store) PostService {
	return &postService{store: st, now: time.Now}
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	data, err := s.store.Get(ctx, store.KeyPosts)
	if err != nil {
		return nil, err
	}

	posts := store.DecodeList[models.Post](data)
	// Descending order is applied at read time; the stored list keeps
	// whatever order writes produced.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts, nil
}

func (s *postService) Create(ctx context.Context, author *models.User, content, tagsLine string) (*models.Post, error) {
	if author == nil {
		return nil, common.ErrorNotAuthenticated
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrorValidation
	}

	post := &models.Post{
		Id:         uuid.NewString(),
		UserId:     author.Email,
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Content:    content,
		Tags:       models.ParseTags(tagsLine),
		Likes:      0,
		Comments:   []models.Comment{},
		CreatedAt:  s.now().UnixMilli(),
	}

	err := s.store.Update(ctx, store.KeyPosts, func(old []byte) ([]byte, error) {
		posts := store.DecodeList[models.Post](old)
		return store.EncodeList(append(posts, *post))
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Like(ctx context.Context, id string) error {
	return s.store.Update(ctx, store.KeyPosts, func(old []byte) ([]byte, error) {
		posts := store.DecodeList[models.Post](old)
		for n := range posts {
			if posts[n].Id == id {
				posts[n].Likes++
				return store.EncodeList(posts)
			}
		}
		return nil, common.ErrorNotFound
	})
}

func (s *postService) AddComment(ctx context.Context, id string, author *models.User, content string) (*models.Comment, error) {
	if author == nil {
		return nil, common.ErrorNotAuthenticated
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, common.ErrorValidation
	}

	comment := &models.Comment{
		Id:        uuid.NewString(),
		UserName:  author.Name,
		Content:   content,
		CreatedAt: s.now().UnixMilli(),
	}

	err := s.store.Update(ctx, store.KeyPosts, func(old []byte) ([]byte, error) {
		posts := store.DecodeList[models.Post](old)
		for n := range posts {
			if posts[n].Id == id {
				posts[n].Comments = append(posts[n].Comments, *comment)
				return store.EncodeList(posts)
			}
		}
		return nil, common.ErrorNotFound
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}
