package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SportsProvider --dir ../usecase --output usecase --outpkg usecasemock --filename sports_provider_mock.go
