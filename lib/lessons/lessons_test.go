package lessons

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitlearn/cli/config"
	"github.com/gitlearn/cli/lib/vcs"
)

// scriptedAsker replays canned answers instead of reading the terminal.
type scriptedAsker struct {
	answers []string
	next    int
}

func (s *scriptedAsker) Ask(prompt string) (string, error) {
	if s.next >= len(s.answers) {
		return "", errors.New("no more scripted answers")
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

func (s *scriptedAsker) Ack(prompt string) error {
	return nil
}

func newTestCourse(answers ...string) (*Course, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	cfg.Speed = 10000
	return NewCourse(context.Background(), &buf, cfg, &scriptedAsker{answers: answers}), &buf
}

// TestLessonInit verifies lesson 1's post-conditions: exactly one branch
// named main, empty, current, and the counter bumped by one.
func TestLessonInit(t *testing.T) {
	course, buf := newTestCourse()

	require.NoError(t, course.LessonInit())

	repo := course.Repository()
	assert.True(t, repo.Initialized)
	assert.Equal(t, "main", repo.CurrentBranch)

	branches := repo.Branches()
	require.Len(t, branches, 1)
	assert.Equal(t, "main", branches[0].Name)
	assert.Empty(t, branches[0].Commits)

	assert.Equal(t, 1, course.Progress().Completed)
	assert.Contains(t, buf.String(), "Initialized empty Git repository")
}

// TestLessonAddCommit verifies lesson 2 stages the fixed files and lands one
// commit on main.
func TestLessonAddCommit(t *testing.T) {
	course, _ := newTestCourse()
	require.NoError(t, course.LessonInit())

	require.NoError(t, course.LessonAddCommit())

	repo := course.Repository()
	assert.Equal(t, []string{"README.md", "main.go", "go.mod"}, repo.WorkingFiles)
	assert.Equal(t, repo.WorkingFiles, repo.StagedFiles)

	main, err := repo.Branch("main")
	require.NoError(t, err)
	require.Len(t, main.Commits, 1)
	assert.Equal(t, "Initial commit", main.Commits[0].Message)
	assert.Len(t, main.Commits[0].Hash, 7)

	assert.Equal(t, 2, course.Progress().Completed)
}

// TestLessonBranching verifies the fork point: feature-auth starts from
// main's commit and gains two of its own.
func TestLessonBranching(t *testing.T) {
	course, buf := newTestCourse()
	require.NoError(t, course.LessonInit())
	require.NoError(t, course.LessonAddCommit())

	require.NoError(t, course.LessonBranching())

	repo := course.Repository()
	assert.Equal(t, "feature-auth", repo.CurrentBranch)

	feature, err := repo.Branch("feature-auth")
	require.NoError(t, err)
	require.Len(t, feature.Commits, 3)
	assert.Equal(t, "Initial commit", feature.Commits[0].Message)
	assert.Equal(t, "Add login functionality", feature.Commits[1].Message)
	assert.Equal(t, "Add password validation", feature.Commits[2].Message)

	// main is untouched by the fork's commits.
	main, err := repo.Branch("main")
	require.NoError(t, err)
	assert.Len(t, main.Commits, 1)

	assert.Equal(t, 3, course.Progress().Completed)
	assert.Contains(t, buf.String(), "Branch structure:")
}

// TestLessonBranching_WithoutInit verifies running lesson 3 before lesson 1
// fails with a lookup error instead of silently creating main.
func TestLessonBranching_WithoutInit(t *testing.T) {
	course, _ := newTestCourse()

	err := course.LessonBranching()
	assert.ErrorIs(t, err, vcs.ErrBranchNotFound)
	assert.Empty(t, course.Repository().Branches())
	assert.Equal(t, 0, course.Progress().Completed)
}

// TestLessonPush_WithoutInit verifies lesson 4 also needs the current branch
// to exist.
func TestLessonPush_WithoutInit(t *testing.T) {
	course, _ := newTestCourse()

	err := course.LessonPush()
	assert.ErrorIs(t, err, vcs.ErrBranchNotFound)
	assert.Equal(t, 0, course.Progress().Completed)
}

// TestLessonPush verifies lesson 4 reports the current branch's commit count.
func TestLessonPush(t *testing.T) {
	course, buf := newTestCourse()
	require.NoError(t, course.LessonInit())
	require.NoError(t, course.LessonAddCommit())
	require.NoError(t, course.LessonBranching())

	require.NoError(t, course.LessonPush())

	out := buf.String()
	assert.Contains(t, out, "Pushing 3 commit(s) to origin/feature-auth...")
	assert.Contains(t, out, "Push completed successfully!")
	assert.Equal(t, 4, course.Progress().Completed)
}

// TestRunLesson_EachIncrementsByOne verifies every core lesson bumps the
// counter by exactly one.
func TestRunLesson_EachIncrementsByOne(t *testing.T) {
	course, _ := newTestCourse()

	for i, lesson := range course.Lessons() {
		require.NoError(t, lesson.Run(), "lesson %d", lesson.Number)
		assert.Equal(t, i+1, course.Progress().Completed)
	}
}

// TestRunLesson_OutOfRange verifies out-of-range lesson numbers fail without
// touching repository state.
func TestRunLesson_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 5, 99} {
		course, _ := newTestCourse()

		err := course.RunLesson(n)
		assert.ErrorIs(t, err, ErrLessonNotFound, "lesson %d", n)
		assert.Empty(t, course.Repository().Branches())
		assert.False(t, course.Repository().Initialized)
		assert.Equal(t, 0, course.Progress().Completed)
	}
}

func TestShowProgress(t *testing.T) {
	course, buf := newTestCourse()
	require.NoError(t, course.LessonInit())

	course.ShowProgress()

	out := buf.String()
	assert.Contains(t, out, "Lessons completed: 1/10")
	assert.Contains(t, out, "Progress: 10.0%")
}

// TestRunFull verifies the end-to-end fast-mode scenario: both quiz answers
// correct, 2/2 score, the excellent-performance line, and a 4/10 summary.
func TestRunFull(t *testing.T) {
	course, buf := newTestCourse("b", "b")

	require.NoError(t, course.RunFull(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Quiz Score: 2/2")
	assert.Contains(t, out, "Excellent quiz performance!")
	assert.Contains(t, out, "Lessons completed: 4/10")
	assert.Contains(t, out, "Congratulations!")
	assert.Equal(t, 4, course.Progress().Completed)
}

// TestRunFull_LowScore verifies the excellent-performance line is gated on
// the quiz score.
func TestRunFull_LowScore(t *testing.T) {
	course, buf := newTestCourse("a", "c")

	require.NoError(t, course.RunFull(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Quiz Score: 0/2")
	assert.NotContains(t, out, "Excellent quiz performance!")
	assert.Contains(t, out, "Congratulations!")
}

// TestRunFull_Cancelled verifies an interrupt between phases stops the run
// and surfaces the context error for the caller to present.
func TestRunFull_Cancelled(t *testing.T) {
	course, _ := newTestCourse()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := course.RunFull(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, course.Progress().Completed)
}

// TestRunFull_CancelMidAnimation verifies cancellation during an animation
// wait returns promptly at full speed instead of after the current sleep
// runs out. The welcome pause alone is 2s, so a fast return proves the wait
// was interrupted.
func TestRunFull_CancelMidAnimation(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	course := NewCourse(ctx, &buf, config.Defaults(), &scriptedAsker{})

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := course.RunFull(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 1500*time.Millisecond)
	assert.Equal(t, 0, course.Progress().Completed)
}
