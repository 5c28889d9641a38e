package repository

var NewAnalyticsRepositoryForTest = newAnalyticsRepository
