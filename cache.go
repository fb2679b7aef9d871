// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered views only live as long as an interactive session realistically does
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute

	helpCacheKey = "help"
)

// NewRenderCache creates a cache for rendered diagrams and help pages
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// diagramKey ties a rendered diagram to the tree revision it was drawn from.
func diagramKey(revision uint64) string {
	return fmt.Sprintf("diagram:%d", revision)
}

func CacheRender(c *cache.Cache, key string, rendered string) {
	c.Set(key, rendered, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	rendered, ok := val.(string)
	return rendered, ok
}

// GetOrRender returns the cached value for key, calling render to fill it on
// a miss.
func GetOrRender(c *cache.Cache, key string, render func() string) string {
	if rendered, ok := GetRender(c, key); ok {
		return rendered
	}
	rendered := render()
	CacheRender(c, key, rendered)
	return rendered
}
