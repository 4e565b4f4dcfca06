// Package sessfile binds filesystem paths to long-lived file sessions: an
// open handle, a resolved location and a serialization format derived from
// the file's extension.
//
// A [Session] is constructed with [New], which resolves the path, creates a
// missing file together with its missing parent directories (unless
// configured otherwise through [Options]) and opens it in [DefaultMode].
// Reads and writes dispatch through the format of the current extension:
// JSON, CSV, YAML and TOML documents decode into generic Go values, files
// with pickle extensions hold gob-encoded object graphs, and anything else
// passes through as raw text or bytes. Lifecycle operations cover clearing,
// deleting, copying and moving the underlying file, with copies resolving
// name collisions through numbered suffixes.
//
// Sessions are not safe for concurrent use. Every session has exactly one
// owner, the session owns its file handle exclusively, and all operations
// block until completion. Held resources are released with an explicit
// [Session.Close], usually deferred right after construction:
//
//	s, err := sessfile.New("config.json", nil)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	if err := s.Write(map[string]any{"retries": 3}, "w", nil); err != nil {
//		return err
//	}
package sessfile
