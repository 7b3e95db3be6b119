package mocks

//go:generate mockery --name EventStore --srcpkg github.com/eventdesk-lab/eventdesk/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name AccountStore --srcpkg github.com/eventdesk-lab/eventdesk/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
