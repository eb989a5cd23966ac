package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bale/internal/core/domain"
)

func TestApp_Verify_Intact(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	h.store.EXPECT().Get(dir).Return(&domain.BundleRecord{
		Name:        "express",
		Files:       summary().Files,
		Fingerprint: summary().Fingerprint,
	}, nil)
	h.hasher.EXPECT().Summarize(dir).Return(summary(), nil)
	h.logger.EXPECT().Success("Bundle " + dir + " matches its record")

	report, err := h.app.Verify(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, report.Intact())
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Added)
}

func TestApp_Verify_DetectsChanges(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	h.store.EXPECT().Get(dir).Return(&domain.BundleRecord{
		Files:       []string{"a.tgz", "b.tgz"},
		Fingerprint: "1111111111111111",
	}, nil)
	h.hasher.EXPECT().Summarize(dir).Return(&domain.DirSummary{
		Files:       []string{"a.tgz", "c.tgz"},
		Fingerprint: "2222222222222222",
	}, nil)
	h.logger.EXPECT().Warn("Bundle " + dir + " differs from its record")

	report, err := h.app.Verify(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, report.Intact())
	assert.Equal(t, []string{"b.tgz"}, report.Missing)
	assert.Equal(t, []string{"c.tgz"}, report.Added)
}

func TestApp_Verify_NoRecord(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(t.TempDir(), "unknown")

	h.store.EXPECT().Get(dir).Return(nil, nil)

	_, err := h.app.Verify(context.Background(), dir)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}
