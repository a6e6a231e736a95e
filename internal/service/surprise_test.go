package service

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"valentine.share/internal/models"
	"valentine.share/internal/photo"
	"valentine.share/internal/store"
)

var linkRe = regexp.MustCompile(`^https?://.+/valentine\.html\?id=[0-9a-f]{16}$`)

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func testUploads(t *testing.T, n int) []PhotoUpload {
	t.Helper()
	uploads := make([]PhotoUpload, 0, n)
	for i := 0; i < n; i++ {
		uploads = append(uploads, PhotoUpload{
			ContentType: "image/jpeg",
			Data:        testJPEG(t, 100+i, 100),
		})
	}
	return uploads
}

func TestCreate_RoundTrip(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewSurpriseService(st, "http://example.com")

	result, err := svc.Create(context.Background(), CreateInput{
		PartnerName: "Alex",
		SenderName:  "Sam",
		Photos:      testUploads(t, 5),
	})
	require.NoError(t, err)
	require.Regexp(t, `^[0-9a-f]{16}$`, result.ID)
	require.Regexp(t, `^[0-9A-F]{8}$`, result.SecretKey)
	require.Regexp(t, linkRe, result.Link)
	require.Contains(t, result.Link, result.ID)

	got, err := svc.Get(context.Background(), result.ID)
	require.NoError(t, err)
	require.Equal(t, "Alex", got.PartnerName)
	require.Equal(t, "Sam", got.SenderName)
	require.Len(t, got.Photos, models.PhotoCount)
	for _, p := range got.Photos {
		require.Equal(t, "image/jpeg", p.ContentType)
		require.NotEmpty(t, p.Data)
	}
	require.False(t, got.CreatedAt.IsZero())
}

func TestCreate_WrongPhotoCount(t *testing.T) {
	svc := NewSurpriseService(store.NewMemoryStore(), "http://example.com")

	for _, n := range []int{0, 1, 4, 6} {
		_, err := svc.Create(context.Background(), CreateInput{
			PartnerName: "Alex",
			SenderName:  "Sam",
			Photos:      testUploads(t, n),
		})
		require.ErrorIs(t, err, ErrPhotoCount, "count %d", n)
	}
}

func TestCreate_UndecodablePhotoAborts(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewSurpriseService(st, "http://example.com")

	uploads := testUploads(t, 5)
	uploads[2].Data = []byte("not an image")

	_, err := svc.Create(context.Background(), CreateInput{
		PartnerName: "Alex",
		SenderName:  "Sam",
		Photos:      uploads,
	})
	require.ErrorIs(t, err, photo.ErrUnsupported)
}

func TestCreate_LinkBaseFallsBackToRequest(t *testing.T) {
	svc := NewSurpriseService(store.NewMemoryStore(), "")

	result, err := svc.Create(context.Background(), CreateInput{
		PartnerName: "Alex",
		SenderName:  "Sam",
		Photos:      testUploads(t, 5),
		RequestBase: "https://surprise.test",
	})
	require.NoError(t, err)
	require.Regexp(t, `^https://surprise\.test/valentine\.html\?id=[0-9a-f]{16}$`, result.Link)
}

func TestCreate_DistinctIDs(t *testing.T) {
	svc := NewSurpriseService(store.NewMemoryStore(), "http://example.com")

	uploads := testUploads(t, 5)
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		result, err := svc.Create(context.Background(), CreateInput{
			PartnerName: "Alex",
			SenderName:  "Sam",
			Photos:      uploads,
		})
		require.NoError(t, err)
		_, dup := seen[result.ID]
		require.False(t, dup, "duplicate id %s", result.ID)
		seen[result.ID] = struct{}{}
	}
}

func TestGet_Missing(t *testing.T) {
	svc := NewSurpriseService(store.NewMemoryStore(), "http://example.com")

	_, err := svc.Get(context.Background(), "00000000deadbeef")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCheck(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewSurpriseService(st, "http://example.com")

	exists, sender, err := svc.Check(context.Background(), "00000000deadbeef")
	require.NoError(t, err)
	require.False(t, exists)
	require.Empty(t, sender)

	result, err := svc.Create(context.Background(), CreateInput{
		PartnerName: "Alex",
		SenderName:  "Sam",
		Photos:      testUploads(t, 5),
	})
	require.NoError(t, err)

	// Repeated reads must be identical: no mutation on read.
	for i := 0; i < 3; i++ {
		exists, sender, err = svc.Check(context.Background(), result.ID)
		require.NoError(t, err)
		require.True(t, exists)
		require.Equal(t, "Sam", sender)
	}
}
