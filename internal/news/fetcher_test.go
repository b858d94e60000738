// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestExtractNews verifies the marker scan against a trimmed-down reader page.
*/
func TestExtractNews(t *testing.T) {
	page := `<html><body>
		<img src="comics/4269.png">
		<div id="news" class="news">
			Big convention announcement!
		</div>
		<div id="footer"></div>
	</body></html>`

	text, err := extractNews(page, 4269)
	require.NoError(t, err)
	assert.Equal(t, "Big convention announcement!", text)
}

func TestExtractNews_MissingBlock(t *testing.T) {
	_, err := extractNews("<html><body>nothing here</body></html>", 1)
	assert.Error(t, err)
}
