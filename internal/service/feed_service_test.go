package service

import (
	"context"
	"errors"
	"testing"

	"yatube/internal/models"
)

func newFeedService(posts *postRepoStub, groups *groupRepoStub, users *userRepoStub, follows *followRepoStub) *FeedService {
	return NewFeedService(posts, groups, users, follows)
}

func TestFeedServiceListAllClampsOutOfRangePage(t *testing.T) {
	var gotLimit, gotOffset int
	posts := noopPostRepo()
	posts.countFn = func(context.Context) (int64, error) { return 23, nil }
	posts.listFn = func(_ context.Context, limit, offset int) ([]*models.Post, error) {
		gotLimit, gotOffset = limit, offset
		return []*models.Post{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	}

	svc := newFeedService(posts, noopGroupRepo(), noopUserRepo(), noopFollowRepo())
	page, err := svc.ListAll(context.Background(), 99)
	if err != nil {
		t.Fatal(err)
	}
	if page.Number != 3 {
		t.Fatalf("expected clamp to last page 3, got %d", page.Number)
	}
	if gotLimit != 10 || gotOffset != 20 {
		t.Fatalf("expected window limit=10 offset=20, got limit=%d offset=%d", gotLimit, gotOffset)
	}
	if page.TotalPages != 3 || !page.HasPrev || page.HasNext {
		t.Fatalf("unexpected page shape: %+v", page)
	}
}

func TestFeedServiceListAllEmpty(t *testing.T) {
	svc := newFeedService(noopPostRepo(), noopGroupRepo(), noopUserRepo(), noopFollowRepo())
	page, err := svc.ListAll(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if page.Number != 1 || page.TotalPages != 1 || len(page.Items) != 0 {
		t.Fatalf("expected a valid empty first page, got %+v", page)
	}
}

func TestFeedServiceListByGroupUnknownSlug(t *testing.T) {
	groups := noopGroupRepo()
	groups.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
		return nil, models.NewNotFoundError("group", slug)
	}

	svc := newFeedService(noopPostRepo(), groups, noopUserRepo(), noopFollowRepo())
	_, _, err := svc.ListByGroup(context.Background(), "missing", 1)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestFeedServiceProfileIncludesFollowState(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 7, Username: "leo"}, nil
	}
	posts := noopPostRepo()
	posts.countByAuthorFn = func(context.Context, uint) (int64, error) { return 4, nil }
	posts.listByAuthorFn = func(context.Context, uint, int, int) ([]*models.Post, error) {
		return []*models.Post{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}, nil
	}
	follows := noopFollowRepo()
	follows.countFollowersFn = func(context.Context, uint) (int64, error) { return 2, nil }
	follows.countFollowingFn = func(context.Context, uint) (int64, error) { return 5, nil }
	var existsArgs [2]uint
	follows.existsFn = func(_ context.Context, userID, authorID uint) (bool, error) {
		existsArgs = [2]uint{userID, authorID}
		return true, nil
	}

	svc := newFeedService(posts, noopGroupRepo(), users, follows)
	profile, err := svc.ListByAuthor(context.Background(), "leo", 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if profile.PostCount != 4 || profile.FollowerCount != 2 || profile.FollowingCount != 5 {
		t.Fatalf("unexpected counts: %+v", profile)
	}
	if !profile.Following {
		t.Fatal("expected viewer 3 to be following author 7")
	}
	if existsArgs != [2]uint{3, 7} {
		t.Fatalf("expected Exists(3, 7), got %v", existsArgs)
	}
}

func TestFeedServiceProfileAnonymousSkipsFollowCheck(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 7, Username: "leo"}, nil
	}
	follows := noopFollowRepo()
	follows.existsFn = func(context.Context, uint, uint) (bool, error) {
		t.Fatal("Exists must not be called for anonymous viewers")
		return false, nil
	}

	svc := newFeedService(noopPostRepo(), noopGroupRepo(), users, follows)
	profile, err := svc.ListByAuthor(context.Background(), "leo", 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if profile.Following {
		t.Fatal("anonymous viewer must not be marked as following")
	}
}

func TestFeedServiceListFeedEmptyWhenFollowingNobody(t *testing.T) {
	svc := newFeedService(noopPostRepo(), noopGroupRepo(), noopUserRepo(), noopFollowRepo())
	page, err := svc.ListFeed(context.Background(), 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 0 || page.TotalItems != 0 {
		t.Fatalf("expected empty feed page, got %+v", page)
	}
}
