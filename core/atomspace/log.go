package atomspace

// sugaredLogger is the subset of *zap.SugaredLogger the store uses.
// A Store built without WithLogger gets zap.NewNop().Sugar(), so
// logging is silent unless a caller wires one in.
type sugaredLogger interface {
	Debugw(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
}

func (s *Store) log() sugaredLogger {
	return s.cfg.Logger.With("store_instance", s.instanceID, "database_name", s.cfg.DatabaseName)
}
