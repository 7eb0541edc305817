// Package mocks provides function-field mock implementations of the service
// interfaces consumed by the HTTP layer.
//
// Each mock exposes one Fn field per interface method. A nil Fn falls back to
// the zero-value defaults stored on the mock, so tests only wire the calls
// they care about:
//
//	tasks := &mocks.MockTaskService{
//	    ListTasksFn: func(ctx context.Context, userID, folderID uuid.UUID) (*service.TaskList, error) {
//	        return nil, service.ErrFolderNotFound
//	    },
//	}
package mocks
