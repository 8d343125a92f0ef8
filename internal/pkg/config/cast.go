package config

import "strconv"

// viper's typed getters return zero on malformed input, so parse the raw
// string to be able to fall back to the caller's default.

func castInt(key string) (int, error) {
	return strconv.Atoi(v.GetString(key))
}

func castBool(key string) (bool, error) {
	return strconv.ParseBool(v.GetString(key))
}

func castFloat(key string) (float64, error) {
	return strconv.ParseFloat(v.GetString(key), 64)
}
