package policy

import (
	"github.com/google/uuid"

	"blog-backend/internal/shared/apperr"
	"blog-backend/internal/shared/auth"
)

// Operation là thao tác trên một resource
type Operation string

const (
	OpList   Operation = "list"
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// ResourceKind là loại resource được bảo vệ
type ResourceKind string

const (
	KindArticle ResourceKind = "article"
	KindUser    ResourceKind = "user"
	KindComment ResourceKind = "comment"
)

// Resource is the target of an operation. OwnerID is the article owner, the comment
// author, or the user itself; it is uuid.Nil for collection operations.
type Resource struct {
	Kind    ResourceKind
	OwnerID uuid.UUID
}

func Article(ownerID uuid.UUID) Resource { return Resource{Kind: KindArticle, OwnerID: ownerID} }
func User(userID uuid.UUID) Resource     { return Resource{Kind: KindUser, OwnerID: userID} }
func Comment(authorID uuid.UUID) Resource {
	return Resource{Kind: KindComment, OwnerID: authorID}
}

// rule decides one (resource, operation) pair
type rule struct {
	requiresAuth bool
	allow        func(actor *auth.Principal, res Resource) bool
	denyMessage  string
}

func always(*auth.Principal, Resource) bool { return true }

func authenticated(actor *auth.Principal, _ Resource) bool { return actor.IsAuthenticated() }

func owner(actor *auth.Principal, res Resource) bool {
	return actor.IsAuthenticated() && actor.UserID == res.OwnerID
}

func admin(actor *auth.Principal, _ Resource) bool { return actor.IsAdmin() }

func ownerOrAdmin(actor *auth.Principal, res Resource) bool {
	return owner(actor, res) || admin(actor, res)
}

var rules = map[ResourceKind]map[Operation]rule{
	KindArticle: {
		OpList:   {allow: always},
		OpRead:   {allow: always},
		OpCreate: {requiresAuth: true, allow: authenticated},
		OpUpdate: {requiresAuth: true, allow: owner, denyMessage: "only the creator can edit post"},
		OpDelete: {requiresAuth: true, allow: admin, denyMessage: "only an admin can delete posts"},
	},
	KindUser: {
		OpCreate: {allow: always},
		OpRead:   {allow: always},
		OpUpdate: {requiresAuth: true, allow: owner, denyMessage: "users can only edit their own account"},
	},
	KindComment: {
		OpList:   {allow: always},
		OpRead:   {allow: always},
		OpCreate: {requiresAuth: true, allow: authenticated},
		OpDelete: {requiresAuth: true, allow: ownerOrAdmin, denyMessage: "only the author or an admin can delete comments"},
	},
}

// CanPerform reports whether actor may perform op on res. Unknown pairs are denied.
func CanPerform(op Operation, actor *auth.Principal, res Resource) bool {
	r, ok := lookup(op, res.Kind)
	if !ok {
		return false
	}
	if r.requiresAuth && !actor.IsAuthenticated() {
		return false
	}
	return r.allow(actor, res)
}

// Authorize is CanPerform returning the error to surface: apperr.ErrUnauthorized
// for anonymous callers on protected operations, a forbidden error otherwise.
func Authorize(op Operation, actor *auth.Principal, res Resource) error {
	if CanPerform(op, actor, res) {
		return nil
	}

	r, ok := lookup(op, res.Kind)
	if ok && r.requiresAuth && !actor.IsAuthenticated() {
		return apperr.ErrUnauthorized
	}
	if !actor.IsAuthenticated() && !ok {
		return apperr.ErrUnauthorized
	}

	msg := "access denied"
	if ok && r.denyMessage != "" {
		msg = r.denyMessage
	}
	return apperr.Forbidden(msg)
}

func lookup(op Operation, kind ResourceKind) (rule, bool) {
	ops, ok := rules[kind]
	if !ok {
		return rule{}, false
	}
	r, ok := ops[op]
	return r, ok
}
