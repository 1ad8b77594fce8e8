// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog"
	eventlogmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/rpg-dungeon/internal/repositories/session/mock"
)

// ExpectSessionLoad sets up a single Get of the stored session
func ExpectSessionLoad(repo *sessionmock.MockRepository, stored *session.Session) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), session.GetInput{GameID: stored.GameID}).
		Return(&session.GetOutput{Session: stored}, nil)
}

// ExpectSessionSave accepts one Update and records the stored snapshot
// in saved
func ExpectSessionSave(repo *sessionmock.MockRepository, saved **session.Session) *gomock.Call {
	return repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input session.UpdateInput) (*session.UpdateOutput, error) {
			if saved != nil {
				*saved = input.Session
			}
			return &session.UpdateOutput{Session: input.Session}, nil
		})
}

// ExpectJournal accepts one Append and numbers the batch after last
func ExpectJournal(log *eventlogmock.MockRepository, last int64) *gomock.Call {
	return log.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input eventlog.AppendInput) (*eventlog.AppendOutput, error) {
			return &eventlog.AppendOutput{
				FirstSequence: last + 1,
				LastSequence:  last + int64(len(input.Events)),
			}, nil
		})
}
