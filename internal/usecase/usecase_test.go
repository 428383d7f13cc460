package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/AdBoard/internal/auth"
	"github.com/GoArmGo/AdBoard/internal/domain"
	"github.com/GoArmGo/AdBoard/internal/logger"
	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var (
	author    = &domain.User{ID: 1, Username: "alice", Role: domain.RoleMember}
	stranger  = &domain.User{ID: 2, Username: "bob", Role: domain.RoleMember}
	moderator = &domain.User{ID: 3, Username: "mod", Role: domain.RoleModerator}
)

func TestListCategoriesClampsPage(t *testing.T) {
	storage := new(MockCategoryStorage)
	uc := NewCategoryUseCase(storage, 10, logger.Discard())
	ctx := context.Background()

	storage.On("CountCategories", ctx).Return(int64(25), nil)
	storage.On("ListCategories", ctx, 20, 10).Return([]domain.Category{{ID: 21, Name: "Toys"}}, nil)

	result, err := uc.ListCategories(ctx, "99")
	require.NoError(t, err)
	assert.Equal(t, 3, result.NumPages)
	assert.Equal(t, int64(25), result.Total)
	assert.Len(t, result.Items, 1)
	storage.AssertExpectations(t)
}

func TestListAdsResolvesImageURLs(t *testing.T) {
	storage := new(MockAdStorage)
	files := new(MockFileStorage)
	uc := NewAdUseCase(storage, files, new(MockPublisher), 5, logger.Discard())
	ctx := context.Background()

	storage.On("CountAds", ctx).Return(int64(0), nil)
	storage.On("ListAdViews", ctx, 0, 5).Return([]domain.AdView{
		{ID: 1, Name: "Bike", Image: ptr("ads/1/a.png")},
		{ID: 2, Name: "Lamp"},
	}, nil)

	result, err := uc.ListAds(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.NumPages)
	assert.Equal(t, "http://files.local/ads-bucket/ads/1/a.png", *result.Items[0].Image)
	assert.Nil(t, result.Items[1].Image)
}

func TestCreateAdDefaultsAuthorToCaller(t *testing.T) {
	storage := new(MockAdStorage)
	uc := NewAdUseCase(storage, new(MockFileStorage), new(MockPublisher), 10, logger.Discard())
	ctx := context.Background()

	storage.On("CreateAd", ctx, mock.AnythingOfType("*domain.Ad")).Return(nil)

	ad, err := uc.CreateAd(ctx, author, &domain.Ad{Name: "Bike", Price: 10, CategoryID: 2})
	require.NoError(t, err)
	require.NotNil(t, ad.AuthorID)
	assert.Equal(t, author.ID, *ad.AuthorID)

	ad, err = uc.CreateAd(ctx, author, &domain.Ad{Name: "Gift", CategoryID: 2, AuthorID: ptr(int64(9))})
	require.NoError(t, err)
	assert.Equal(t, int64(9), *ad.AuthorID)
}

func TestUpdateAdPermissions(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		caller  *domain.User
		wantErr bool
	}{
		{"author", author, false},
		{"moderator", moderator, false},
		{"stranger", stranger, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storage := new(MockAdStorage)
			uc := NewAdUseCase(storage, new(MockFileStorage), new(MockPublisher), 10, logger.Discard())

			storage.On("GetAdByID", ctx, int64(5)).
				Return(&domain.Ad{ID: 5, Name: "Bike", Price: 10, AuthorID: ptr(author.ID), CategoryID: 1}, nil)
			storage.On("UpdateAd", ctx, mock.AnythingOfType("*domain.Ad")).Return(nil).Maybe()

			ad, err := uc.UpdateAd(ctx, tc.caller, 5, domain.AdChanges{Price: ptr(int64(99))})
			if tc.wantErr {
				var forbidden *domain.ForbiddenError
				require.ErrorAs(t, err, &forbidden)
				assert.Equal(t, domain.AdPermissionDenied, forbidden.Message)
				storage.AssertNotCalled(t, "UpdateAd", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(99), ad.Price)
		})
	}
}

func TestUpdateAdRequiresCaller(t *testing.T) {
	uc := NewAdUseCase(new(MockAdStorage), new(MockFileStorage), new(MockPublisher), 10, logger.Discard())

	_, err := uc.UpdateAd(context.Background(), nil, 5, domain.AdChanges{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUploadImageReplacesAndQueuesCleanup(t *testing.T) {
	storage := new(MockAdStorage)
	files := new(MockFileStorage)
	publisher := new(MockPublisher)
	uc := NewAdUseCase(storage, files, publisher, 10, logger.Discard())
	ctx := context.Background()

	storage.On("GetAdByID", ctx, int64(5)).
		Return(&domain.Ad{ID: 5, Name: "Bike", AuthorID: ptr(author.ID), Image: ptr("ads/5/old.png")}, nil)
	files.On("UploadFile", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "ads/5/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, "image/png").Return("http://files.local/x", nil)
	storage.On("UpdateAdImage", ctx, int64(5), mock.AnythingOfType("*string")).Return(nil)
	publisher.On("PublishImageCleanup", ctx, payloads.ImageCleanupPayload{
		Key: "ads/5/old.png", AdID: 5, Reason: payloads.ReasonImageReplaced,
	}).Return(nil)

	ad, err := uc.UploadImage(ctx, author, 5, bytes.NewReader([]byte("png")), "Poster.PNG", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(*ad.Image, "http://files.local/ads-bucket/ads/5/"))

	files.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUploadImageRemovesObjectWhenSaveFails(t *testing.T) {
	storage := new(MockAdStorage)
	files := new(MockFileStorage)
	uc := NewAdUseCase(storage, files, new(MockPublisher), 10, logger.Discard())
	ctx := context.Background()

	storage.On("GetAdByID", ctx, int64(5)).Return(&domain.Ad{ID: 5, AuthorID: ptr(author.ID)}, nil)
	files.On("UploadFile", ctx, mock.Anything, mock.Anything, "application/octet-stream").Return("", nil)
	storage.On("UpdateAdImage", ctx, int64(5), mock.Anything).Return(domain.ErrNotFound)
	files.On("DeleteFile", ctx, mock.AnythingOfType("string")).Return(nil)

	_, err := uc.UploadImage(ctx, author, 5, bytes.NewReader(nil), "a.jpg", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	files.AssertCalled(t, "DeleteFile", ctx, mock.AnythingOfType("string"))
}

func TestDeleteAdQueuesImageCleanup(t *testing.T) {
	storage := new(MockAdStorage)
	publisher := new(MockPublisher)
	uc := NewAdUseCase(storage, new(MockFileStorage), publisher, 10, logger.Discard())
	ctx := context.Background()

	storage.On("GetAdByID", ctx, int64(5)).
		Return(&domain.Ad{ID: 5, AuthorID: ptr(author.ID), Image: ptr("ads/5/a.png")}, nil)
	storage.On("DeleteAd", ctx, int64(5)).Return(nil)
	// ошибка очереди не должна ломать удаление
	publisher.On("PublishImageCleanup", ctx, mock.Anything).Return(errors.New("broker down"))

	require.NoError(t, uc.DeleteAd(ctx, moderator, 5))
	publisher.AssertNumberOfCalls(t, "PublishImageCleanup", 1)
}

func TestDeleteAdForbidden(t *testing.T) {
	storage := new(MockAdStorage)
	uc := NewAdUseCase(storage, new(MockFileStorage), new(MockPublisher), 10, logger.Discard())
	ctx := context.Background()

	storage.On("GetAdByID", ctx, int64(5)).Return(&domain.Ad{ID: 5}, nil)

	var forbidden *domain.ForbiddenError
	assert.ErrorAs(t, uc.DeleteAd(ctx, stranger, 5), &forbidden)
	storage.AssertNotCalled(t, "DeleteAd", mock.Anything, mock.Anything)
}

func TestCreateSelectionSetsOwnerAndDedupesItems(t *testing.T) {
	storage := new(MockSelectionStorage)
	uc := NewSelectionUseCase(storage, logger.Discard())
	ctx := context.Background()

	storage.On("CreateSelection", ctx, &domain.Selection{Name: "Fav", OwnerID: author.ID, Items: []int64{3, 1}}).Return(nil)

	selection, err := uc.CreateSelection(ctx, author, "Fav", []int64{3, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, author.ID, selection.OwnerID)
	storage.AssertExpectations(t)
}

func TestUpdateSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("owner replaces items", func(t *testing.T) {
		storage := new(MockSelectionStorage)
		uc := NewSelectionUseCase(storage, logger.Discard())

		storage.On("GetSelectionByID", ctx, int64(4)).
			Return(&domain.Selection{ID: 4, Name: "Fav", OwnerID: author.ID, Items: []int64{1}}, nil)
		storage.On("UpdateSelection", ctx, &domain.Selection{ID: 4, Name: "Fav", OwnerID: author.ID, Items: []int64{}}, true).
			Return(nil)

		selection, err := uc.UpdateSelection(ctx, author, 4, domain.SelectionChanges{Items: &[]int64{}})
		require.NoError(t, err)
		assert.Empty(t, selection.Items)
		storage.AssertExpectations(t)
	})

	t.Run("rename keeps items", func(t *testing.T) {
		storage := new(MockSelectionStorage)
		uc := NewSelectionUseCase(storage, logger.Discard())

		storage.On("GetSelectionByID", ctx, int64(4)).
			Return(&domain.Selection{ID: 4, Name: "Fav", OwnerID: author.ID, Items: []int64{1}}, nil)
		storage.On("UpdateSelection", ctx, mock.AnythingOfType("*domain.Selection"), false).Return(nil)

		selection, err := uc.UpdateSelection(ctx, author, 4, domain.SelectionChanges{Name: ptr("Best")})
		require.NoError(t, err)
		assert.Equal(t, "Best", selection.Name)
		assert.Equal(t, []int64{1}, selection.Items)
	})

	t.Run("staff is not owner", func(t *testing.T) {
		storage := new(MockSelectionStorage)
		uc := NewSelectionUseCase(storage, logger.Discard())

		storage.On("GetSelectionByID", ctx, int64(4)).Return(&domain.Selection{ID: 4, OwnerID: author.ID}, nil)

		_, err := uc.UpdateSelection(ctx, moderator, 4, domain.SelectionChanges{Name: ptr("Mine")})
		var forbidden *domain.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, domain.SelectionPermissionDenied, forbidden.Message)
	})
}

func TestDeleteSelectionMissing(t *testing.T) {
	storage := new(MockSelectionStorage)
	uc := NewSelectionUseCase(storage, logger.Discard())
	ctx := context.Background()

	storage.On("GetSelectionByID", ctx, int64(4)).Return(nil, domain.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteSelection(ctx, author, 4), domain.ErrNotFound)
}

func TestCreateUserHashesPassword(t *testing.T) {
	storage := new(MockUserStorage)
	uc := NewUserUseCase(storage, logger.Discard())
	ctx := context.Background()

	var saved *domain.User
	storage.On("CreateUser", ctx, mock.AnythingOfType("*domain.User"), []string{"Moscow", "Kazan"}).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.User)
			saved.ID = 10
		}).
		Return(nil)
	storage.On("GetUserProfile", ctx, int64(10)).
		Return(&domain.UserProfile{User: domain.User{ID: 10, Username: "carol"}, LocationNames: []string{"Kazan", "Moscow"}}, nil)

	profile, err := uc.CreateUser(ctx, &domain.User{Username: "carol"}, "pa55word", []string{"Moscow", "Kazan", "Moscow"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), profile.ID)

	require.NotNil(t, saved)
	assert.Equal(t, domain.RoleMember, saved.Role)
	assert.NoError(t, auth.ComparePassword(saved.PasswordHash, "pa55word"))
}

func TestUpdateUserAppliesChanges(t *testing.T) {
	storage := new(MockUserStorage)
	uc := NewUserUseCase(storage, logger.Discard())
	ctx := context.Background()

	storage.On("GetUserByID", ctx, int64(10)).
		Return(&domain.User{ID: 10, Username: "carol", PasswordHash: "old", Role: domain.RoleMember}, nil)
	storage.On("UpdateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "carol" && u.Age != nil && *u.Age == 33 && u.PasswordHash == "old"
	}), []string{"Sochi"}).Return(nil)
	storage.On("GetUserProfile", ctx, int64(10)).Return(&domain.UserProfile{User: domain.User{ID: 10}}, nil)

	_, err := uc.UpdateUser(ctx, 10, domain.UserChanges{Age: ptr(33), LocationNames: []string{"Sochi"}})
	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestUpdateUserChangesRole(t *testing.T) {
	storage := new(MockUserStorage)
	uc := NewUserUseCase(storage, logger.Discard())
	ctx := context.Background()

	storage.On("GetUserByID", ctx, int64(10)).
		Return(&domain.User{ID: 10, Username: "carol", Role: domain.RoleMember}, nil)
	storage.On("UpdateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin && u.IsStaff()
	}), mock.Anything).Return(nil)
	storage.On("GetUserProfile", ctx, int64(10)).
		Return(&domain.UserProfile{User: domain.User{ID: 10, Role: domain.RoleAdmin}}, nil)

	profile, err := uc.UpdateUser(ctx, 10, domain.UserChanges{Role: ptr(domain.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, profile.Role)
	storage.AssertExpectations(t)
}

func TestObtainPair(t *testing.T) {
	hash, err := auth.HashPassword("pa55word")
	require.NoError(t, err)

	storage := new(MockUserStorage)
	issuer := auth.NewTokenIssuer("secret", time.Minute, time.Hour)
	uc := NewAuthUseCase(storage, issuer, logger.Discard())
	ctx := context.Background()

	storage.On("GetUserByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice", PasswordHash: hash}, nil)
	storage.On("GetUserByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

	pair, err := uc.ObtainPair(ctx, "alice", "pa55word")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)

	_, err = uc.ObtainPair(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.ObtainPair(ctx, "ghost", "pa55word")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshAndAuthenticate(t *testing.T) {
	storage := new(MockUserStorage)
	issuer := auth.NewTokenIssuer("secret", time.Minute, time.Hour)
	uc := NewAuthUseCase(storage, issuer, logger.Discard())
	ctx := context.Background()

	storage.On("GetUserByID", ctx, int64(1)).Return(author, nil)

	pair, err := issuer.IssuePair(1)
	require.NoError(t, err)

	access, err := uc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)

	user, err := uc.Authenticate(ctx, access)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = uc.Refresh(ctx, pair.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticateDeletedUser(t *testing.T) {
	storage := new(MockUserStorage)
	issuer := auth.NewTokenIssuer("secret", time.Minute, time.Hour)
	uc := NewAuthUseCase(storage, issuer, logger.Discard())
	ctx := context.Background()

	storage.On("GetUserByID", ctx, int64(8)).Return(nil, domain.ErrNotFound)

	access, err := issuer.IssueAccess(8)
	require.NoError(t, err)

	_, err = uc.Authenticate(ctx, access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
