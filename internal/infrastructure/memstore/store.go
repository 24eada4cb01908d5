// Package memstore keeps users, articles and comments in process memory.
// It backs STORAGE_DRIVER=memory and the functional tests.
package memstore

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	articleModel "blog-backend/internal/domains/article/model"
	articleRepo "blog-backend/internal/domains/article/repository"
	commentModel "blog-backend/internal/domains/comment/model"
	commentRepo "blog-backend/internal/domains/comment/repository"
	userModel "blog-backend/internal/domains/user/model"
	userRepo "blog-backend/internal/domains/user/repository"
)

type articleRow struct {
	article *articleModel.Article
	seq     uint64
}

// Store holds every table behind one RWMutex, so multi-row writes are atomic
type Store struct {
	mu sync.RWMutex

	users    map[uuid.UUID]*userModel.User
	articles map[uuid.UUID]*articleRow
	comments map[uuid.UUID]*commentModel.Comment

	// commentOrder giữ thứ tự insert của comments
	commentOrder []uuid.UUID
	seq          uint64
}

func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*userModel.User),
		articles: make(map[uuid.UUID]*articleRow),
		comments: make(map[uuid.UUID]*commentModel.Comment),
	}
}

func (s *Store) Users() userRepo.UserRepository {
	return &userRepository{s: s}
}

func (s *Store) Articles() articleRepo.ArticleRepository {
	return &articleRepository{s: s}
}

func (s *Store) Comments() commentRepo.CommentRepository {
	return &commentRepository{s: s}
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// username trả về username hiện tại của userID (caller giữ lock)
func (s *Store) username(userID uuid.UUID) string {
	if u, ok := s.users[userID]; ok {
		return u.Username
	}
	return ""
}

// commentIDs returns the ids of articleID's comments in insertion order (caller holds lock)
func (s *Store) commentIDs(articleID uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	for _, id := range s.commentOrder {
		if c, ok := s.comments[id]; ok && c.BelongsTo(articleID) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store) removeCommentOrder(id uuid.UUID) {
	for i, existing := range s.commentOrder {
		if existing == id {
			s.commentOrder = append(s.commentOrder[:i], s.commentOrder[i+1:]...)
			return
		}
	}
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(a, b)
}
