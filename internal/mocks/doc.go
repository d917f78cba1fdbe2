// Package mocks provides shared test doubles for the store, service and auth
// interfaces.
//
// Store and service mocks embed testify's mock.Mock and are driven with On/Return:
//
//	userStore := new(mocks.UserStore)
//	userStore.On("GetByID", mock.Anything, id).Return(user, nil)
//
// Simpler collaborators (MockJWTService, MockLoginService) use function
// fields with default return values:
//
//	jwtService := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: id}, nil
//	    },
//	}
//
// Transactor runs transactional work with a nil *sql.Tx; the store mocks
// return themselves from WithTx so expectations set on them still apply.
package mocks
