package mocks

// mockgen rules for generating mocks for exported interfaces (reflection mode).
//go:generate sh -c "mockgen -package=refcnt -destination=$GOPATH/src/$PACKAGE/refcnt/refcnt_mock.go $PACKAGE/refcnt RefCountable,RefCounted"
