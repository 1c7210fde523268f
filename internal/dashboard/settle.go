package dashboard

import tea "github.com/charmbracelet/bubbletea"

// Settle runs cmd outside of a bubbletea program: batched commands run
// concurrently, their results are applied one at a time on the calling
// goroutine, and follow-up commands are chased until nothing is pending.
func (s *Synchronizer) Settle(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	s.apply(cmd())
}

func (s *Synchronizer) apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		results := make(chan tea.Msg, len(msg))
		for _, c := range msg {
			go func(c tea.Cmd) {
				if c == nil {
					results <- nil
					return
				}
				results <- c()
			}(c)
		}
		for range msg {
			s.apply(<-results)
		}
	default:
		if _, next := s.Update(msg); next != nil {
			s.Settle(next)
		}
	}
}
