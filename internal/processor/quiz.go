package processor

import (
	"context"
	"io"
	"math/rand"
	"time"

	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/quiz"
)

// QuizOptions configures a quiz session
type QuizOptions struct {
	Direction matcher.Direction
	Rounds    int
	Group     int   // quiz.AnyGroup for all phrases
	Seed      int64 // 0 seeds from the clock
	In        io.Reader
}

// Quiz runs an interactive drill over the stored phrases
func (p *Processor) Quiz(ctx context.Context, opts QuizOptions) (quiz.Result, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &quiz.Session{
		Repo:      p.repo,
		Rand:      rand.New(rand.NewSource(seed)),
		Direction: opts.Direction,
		Matcher:   p.matcher,
		Group:     opts.Group,
		Rounds:    opts.Rounds,
		In:        opts.In,
		Out:       p.out,
	}
	return session.Run(ctx)
}
