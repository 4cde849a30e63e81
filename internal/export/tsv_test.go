package export

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trappingRainWaterSession() domain.SessionData {
	return testutil.NewTestSession(testutil.TrappingRainWater(),
		testutil.WithTimes(125000*time.Millisecond, 610000*time.Millisecond),
		testutil.WithOverThreshold(false, true),
		testutil.WithGrade(3),
		testutil.WithNotes("went well\nfast"),
		testutil.WithDate("2024-01-01"),
	)
}

func TestFormatSession_LeetCodeProblem(t *testing.T) {
	line := FormatSession(trappingRainWaterSession())

	assert.True(t, strings.HasPrefix(line, "2024-01-01\tLeetcode 42 Trapping Rain Water\t"), line)

	cols := strings.Split(line, "\t")
	require.Len(t, cols, 12)
	assert.Equal(t, "https://leetcode.com/problems/trapping-rain-water/", cols[2])
	assert.Equal(t, "hard", cols[3])
	assert.Equal(t, "2m 5s", cols[4])
	assert.Equal(t, "10m 10s", cols[5])
	assert.Equal(t, "12m 15s", cols[6])
	assert.Equal(t, "N", cols[7])
	assert.Equal(t, "Y", cols[8])
	assert.Equal(t, "3", cols[9])
	assert.Equal(t, "Array, Two Pointers, Dynamic Programming, Stack, Monotonic Stack", cols[10])
	assert.Equal(t, "went well fast", cols[11])
	assert.Contains(t, line, "N\tY\t3\t")
}

func TestFormatSession_FreeformProblem(t *testing.T) {
	p := domain.NewFreeformProblem("LRU cache design")
	s := domain.SessionData{
		Problem:    &p,
		DesignTime: 3 * time.Minute,
		CodingTime: 0,
		Notes:      "\t  spaced\r\n\r\nout  \n",
		Date:       "2024-02-03",
	}

	cols := strings.Split(FormatSession(s), "\t")
	require.Len(t, cols, 12)
	assert.Equal(t, "LRU cache design", cols[1])
	assert.Equal(t, "", cols[2])
	assert.Equal(t, "", cols[3])
	assert.Equal(t, "3m", cols[4])
	assert.Equal(t, "0m", cols[5])
	assert.Equal(t, "3m", cols[6])
	assert.Equal(t, "", cols[9])
	assert.Equal(t, "", cols[10])
	assert.Equal(t, "spaced out", cols[11])
}

func TestFormatSession_NoProblem(t *testing.T) {
	assert.Equal(t, "", FormatSession(domain.SessionData{Date: "2024-01-01"}))
}

func TestHeader_MatchesColumnCount(t *testing.T) {
	header := strings.Split(Header(), "\t")
	row := strings.Split(FormatSession(trappingRainWaterSession()), "\t")
	assert.Len(t, header, len(row))
	assert.Equal(t, "Date", header[0])
	assert.Equal(t, "Notes", header[len(header)-1])
}

func TestFormatEntry_MatchesLiveSession(t *testing.T) {
	s := trappingRainWaterSession()
	e := domain.NewHistoryEntry("id-1", s)
	assert.Equal(t, FormatSession(s), FormatEntry(e))
}

func TestFormatEntries_WithHeader(t *testing.T) {
	s := trappingRainWaterSession()
	entries := []domain.HistoryEntry{domain.NewHistoryEntry("a", s), domain.NewHistoryEntry("b", s)}

	out := FormatEntries(entries, true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header(), lines[0])
	assert.Equal(t, WithHeader(FormatSession(s)), strings.Join(lines[:2], "\n"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{999 * time.Millisecond, "0m"},
		{59 * time.Second, "0m 59s"},
		{60 * time.Second, "1m"},
		{125 * time.Second, "2m 5s"},
		{90*time.Minute + 1500*time.Millisecond, "90m 1s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "FormatDuration(%v)", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "02:05", FormatClock(125*time.Second))
	assert.Equal(t, "125:00", FormatClock(125*time.Minute))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
}
