package database

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	key := "drivers:geo:economy"
	longitude := 106.827153
	latitude := -6.175392
	member := "driver-123"

	mock.ExpectGeoAdd(key, &redis.GeoLocation{
		Longitude: longitude,
		Latitude:  latitude,
		Name:      member,
	}).SetVal(1)

	err := client.GeoAdd(ctx, key, longitude, latitude, member)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("drivers:geo:economy", &redis.GeoLocation{
		Longitude: 106.8,
		Latitude:  -6.1,
		Name:      "driver-123",
	}).SetErr(redis.Nil)

	err := client.GeoAdd(context.Background(), "drivers:geo:economy", 106.8, -6.1, "driver-123")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	key := "drivers:geo:economy"
	longitude := 106.827153
	latitude := -6.175392

	expectedLocations := []redis.GeoLocation{
		{Name: "driver-1", Longitude: 106.825, Latitude: -6.173, Dist: 1.5},
		{Name: "driver-2", Longitude: 106.830, Latitude: -6.178, Dist: 3.2},
	}

	mock.ExpectGeoRadius(key, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:    5.0,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Count:     10,
		Sort:      "ASC",
	}).SetVal(expectedLocations)

	locations, err := client.GeoRadius(ctx, key, longitude, latitude, 5.0, "km", 10)

	assert.NoError(t, err)
	assert.Equal(t, expectedLocations, locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRemove(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectZRem("drivers:geo:economy", "driver-1").SetVal(1)

	err := client.GeoRemove(context.Background(), "drivers:geo:economy", "driver-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
