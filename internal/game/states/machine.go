package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/BaoChess/internal/game/events"
)

// State represents a game status with lifecycle callbacks
type State interface {
	// Status returns the Status this state represents
	Status() Status

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state may be entered given the context
	Validate(ctx *GameContext) error
}

// Transition represents a status change in the history
type Transition struct {
	From      Status
	To        Status
	Timestamp time.Time
	Reason    string
}

// StateMachine owns the game status. It is the only writer of Status.
type StateMachine struct {
	mu             sync.RWMutex
	current        Status
	states         map[Status]State
	context        *GameContext
	history        []Transition
	maxHistorySize int
	eventBus       events.Publisher
}

// NewStateMachine creates a state machine in StatusActive
func NewStateMachine(ctx *GameContext, eventBus events.Publisher) *StateMachine {
	sm := &StateMachine{
		current:        StatusActive,
		states:         make(map[Status]State),
		context:        ctx,
		history:        make([]Transition, 0, 16),
		maxHistorySize: 256,
		eventBus:       eventBus,
	}

	sm.RegisterState(NewActiveState())
	sm.RegisterState(NewDecidedState(StatusWhiteWon))
	sm.RegisterState(NewDecidedState(StatusBlackWon))
	sm.RegisterState(NewDecidedState(StatusDraw))

	return sm
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Status()] = state
}

// Current returns the current status
func (sm *StateMachine) Current() Status {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.current
}

// TransitionTo attempts to move to target. Terminal statuses can only be
// left through Reset.
func (sm *StateMachine) TransitionTo(target Status, reason string) error {
	sm.mu.Lock()
	if target == StatusActive {
		from := sm.current
		sm.mu.Unlock()
		return fmt.Errorf("invalid transition from %s to %s: use Reset", from, target)
	}
	from, err := sm.transitionLocked(target, reason)
	sm.mu.Unlock()
	if err != nil {
		return err
	}
	sm.publish(from, target, reason)
	return nil
}

// Reset returns the machine to StatusActive from any status, including
// active, and clears the transition history.
func (sm *StateMachine) Reset(reason string) error {
	sm.mu.Lock()
	from := sm.current
	sm.history = sm.history[:0]
	var err error
	if from == StatusActive {
		// restart the active state in place
		state := sm.states[StatusActive]
		_ = state.Exit(sm.context)
		sm.context.Reason = reason
		err = state.Enter(sm.context)
	} else {
		_, err = sm.transitionLocked(StatusActive, reason)
	}
	sm.mu.Unlock()
	if err != nil {
		return err
	}
	if from != StatusActive {
		sm.publish(from, StatusActive, reason)
	}
	return nil
}

func (sm *StateMachine) transitionLocked(target Status, reason string) (Status, error) {
	from := sm.current
	if !from.CanTransitionTo(target) {
		return from, fmt.Errorf("invalid transition from %s to %s", from, target)
	}

	currentState, hasCurrentState := sm.states[from]
	targetState, hasTargetState := sm.states[target]
	if !hasTargetState {
		return from, fmt.Errorf("no state implementation for status %s", target)
	}

	previousReason := sm.context.Reason
	sm.context.Reason = reason
	if err := targetState.Validate(sm.context); err != nil {
		sm.context.Reason = previousReason
		return from, fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from", from.String()).
				Str("to", target.String()).
				Msg("Error exiting state")
		}
	}

	sm.current = target
	if err := targetState.Enter(sm.context); err != nil {
		sm.current = from
		sm.context.Reason = previousReason
		return from, fmt.Errorf("failed to enter state %s: %w", target, err)
	}

	sm.addToHistory(Transition{
		From:      from,
		To:        target,
		Timestamp: sm.context.now(),
		Reason:    reason,
	})

	sm.context.Logger.Info().
		Str("from", from.String()).
		Str("to", target.String()).
		Str("reason", reason).
		Msg("Status transition completed")

	return from, nil
}

func (sm *StateMachine) publish(from, to Status, reason string) {
	if sm.eventBus == nil {
		return
	}
	sm.eventBus.Publish(events.NewStatusChangedEvent(sm.context.GameID, from.String(), to.String(), reason))
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)

	if len(sm.history) > sm.maxHistorySize {
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// LastReason returns the reason given for the most recent transition
func (sm *StateMachine) LastReason() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context.Reason
}

// GetContext returns the game context
func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}
