package user

// mockRepository is an in-memory Repository used by the service and handler
// tests.
type mockRepository struct {
	users map[string]*User
	err   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]*User)}
}

func (m *mockRepository) createUser(user *User) error {
	if m.err != nil {
		return m.err
	}
	if _, exists := m.users[user.Email]; exists {
		return ErrEmailAlreadyExists
	}
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if user, ok := m.users[email]; ok {
		found := *user
		return &found, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}
