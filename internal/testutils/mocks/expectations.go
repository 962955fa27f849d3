// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	turnmock "github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn/mock"
)

// Acknowledged is a damage acknowledgment that has already fired
func Acknowledged() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// ExpectAnyRendering lets every renderer call through. Register specific
// expectations first; gomock matches them in order.
func ExpectAnyRendering(r *turnmock.MockRenderer) {
	r.EXPECT().DrawBoard(gomock.Any()).AnyTimes()
	r.EXPECT().RedrawUnits(gomock.Any()).AnyTimes()
	r.EXPECT().HighlightCell(gomock.Any(), gomock.Any()).AnyTimes()
	r.EXPECT().ClearHighlight(gomock.Any()).AnyTimes()
	r.EXPECT().SetCursor(gomock.Any()).AnyTimes()
	r.EXPECT().ShowTooltip(gomock.Any(), gomock.Any()).AnyTimes()
	r.EXPECT().HideTooltip(gomock.Any()).AnyTimes()
	r.EXPECT().ShowUserError(gomock.Any()).AnyTimes()
	r.EXPECT().ShowMessage(gomock.Any()).AnyTimes()
	r.EXPECT().ShowDamage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, int, float64) <-chan struct{} {
			return Acknowledged()
		}).
		AnyTimes()
}

// ExpectPass makes the computer pass every turn
func ExpectPass(s *turnmock.MockStrategy) {
	s.EXPECT().TakeTurn(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}
