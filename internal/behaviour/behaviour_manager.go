package behaviour

// Behaviour is a per-frame hook. The ocean simulation and the underwater
// effect both register as behaviours on the engine loop.
type Behaviour interface {
	Start()
	Update()
	UpdateFixed()
}

type behaviourWrapper struct {
	behaviour Behaviour
	started   bool
}

type Manager struct {
	behaviours []behaviourWrapper
}

var GlobalManager = NewManager()

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Add(behaviour Behaviour) {
	m.behaviours = append(m.behaviours, behaviourWrapper{behaviour: behaviour})
}

func (m *Manager) Remove(behaviour Behaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].behaviour == behaviour {
			// Remove by swapping with last element and truncating
			m.behaviours[i] = m.behaviours[len(m.behaviours)-1]
			m.behaviours = m.behaviours[:len(m.behaviours)-1]
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *Manager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *Manager) UpdateAll() {
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].behaviour.Update()
	}
}

func (m *Manager) UpdateAllFixed() {
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].behaviour.UpdateFixed()
	}
}
