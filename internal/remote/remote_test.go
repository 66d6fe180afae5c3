package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-craft/internal/db"
	"github.com/jonathan/resume-craft/internal/types"
)

func sampleResume() types.ResumeData {
	d := types.DefaultResumeData()
	d.PersonalInfo.FullName = "Ada Lovelace"
	d.PersonalInfo.Email = "ada@example.com"
	d.Skills = append(d.Skills, types.Skill{ID: "s1", Name: "Go", Level: types.SkillExpert})
	return d
}

func TestMergeDocuments(t *testing.T) {
	t.Run("empty existing returns incoming", func(t *testing.T) {
		out, err := mergeDocuments(nil, []byte(`{"a":1}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(out))
	})

	t.Run("incoming keys replace and unknown keys survive", func(t *testing.T) {
		out, err := mergeDocuments([]byte(`{"a":1,"extra":"keep"}`), []byte(`{"a":2,"b":3}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":2,"b":3,"extra":"keep"}`, string(out))
	})

	t.Run("unreadable existing is replaced", func(t *testing.T) {
		out, err := mergeDocuments([]byte(`not json`), []byte(`{"a":1}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(out))
	})

	t.Run("invalid incoming is an error", func(t *testing.T) {
		_, err := mergeDocuments([]byte(`{"a":1}`), []byte(`[`))
		assert.Error(t, err)
	})
}

func TestDecodeDocument_BackfillsDefaults(t *testing.T) {
	data, err := decodeDocument([]byte(`{"personalInfo":{"fullName":"Ada"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", data.PersonalInfo.FullName)
	assert.Equal(t, types.TemplateModern, data.Template)
	assert.Equal(t, types.DefaultSectionOrder(), data.SectionOrder)
	assert.NotNil(t, data.Education)
	assert.Equal(t, types.DefaultFont, data.Design.Font)
}

func TestMemoryBackend(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	_, err := b.Fetch(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Merge(ctx, "u1", sampleResume()))
	got, err := b.Fetch(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.PersonalInfo.FullName)
	assert.Equal(t, 1, b.Merges())

	t.Run("unknown stored keys survive a merge", func(t *testing.T) {
		require.NoError(t, b.MergeRaw(ctx, "u2", []byte(`{"legacy":true}`)))
		require.NoError(t, b.Merge(ctx, "u2", sampleResume()))
		raw, ok := b.Raw("u2")
		require.True(t, ok)
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		assert.Equal(t, true, m["legacy"])
		assert.Contains(t, m, "personalInfo")
	})

	t.Run("injected errors", func(t *testing.T) {
		boom := errors.New("boom")
		b.FetchErr = boom
		b.MergeErr = boom
		defer func() { b.FetchErr, b.MergeErr = nil, nil }()

		_, err := b.Fetch(ctx, "u1")
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, b.Merge(ctx, "u1", sampleResume()), boom)
	})
}

type fakeDocuments struct {
	docs map[string]json.RawMessage
	err  error
}

func (f *fakeDocuments) GetResumeDocument(_ context.Context, userID string) (*db.ResumeDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[userID]
	if !ok {
		return nil, nil
	}
	return &db.ResumeDocument{UserID: userID, Document: doc}, nil
}

func (f *fakeDocuments) MergeResumeDocument(_ context.Context, userID string, document json.RawMessage) error {
	if f.err != nil {
		return f.err
	}
	merged, err := mergeDocuments(f.docs[userID], document)
	if err != nil {
		return err
	}
	f.docs[userID] = merged
	return nil
}

func TestPostgresBackend(t *testing.T) {
	ctx := context.Background()
	store := &fakeDocuments{docs: map[string]json.RawMessage{}}
	b := &PostgresBackend{db: store}

	_, err := b.Fetch(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Merge(ctx, "u1", sampleResume()))
	got, err := b.Fetch(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.PersonalInfo.Email)
	require.Len(t, got.Skills, 1)

	store.err = errors.New("connection refused")
	_, err = b.Fetch(ctx, "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	getErr  error
	puts    []*s3.PutObjectInput
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = body
	f.puts = append(f.puts, params)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Backend_ObjectKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"no prefix", "", "resumes/"},
		{"prefix trimmed", " /tenant-a/ ", "tenant-a/resumes/"},
		{"nested prefix", "a/b", "a/b/resumes/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newS3Backend(newFakeS3(), "bucket", tt.prefix)
			key := b.ObjectKey("../user@example.com")
			assert.True(t, strings.HasPrefix(key, tt.want), key)
			assert.True(t, strings.HasSuffix(key, ".json"))
			assert.NotContains(t, strings.TrimPrefix(key, tt.want), "/")
		})
	}
}

func TestS3Backend_FetchAndMerge(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	b := newS3Backend(fake, "bucket", "prod")

	_, err := b.Fetch(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Merge(ctx, "u1", sampleResume()))
	require.Len(t, fake.puts, 1)
	assert.Equal(t, "application/json", aws.ToString(fake.puts[0].ContentType))

	got, err := b.Fetch(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.PersonalInfo.FullName)

	// unknown keys already in the object survive
	fake.objects["bucket/"+b.ObjectKey("u2")] = []byte(`{"legacy":1}`)
	require.NoError(t, b.Merge(ctx, "u2", sampleResume()))
	assert.Contains(t, string(fake.objects["bucket/"+b.ObjectKey("u2")]), `"legacy":1`)
}

func TestS3Backend_GetErrorIsWrapped(t *testing.T) {
	fake := newFakeS3()
	fake.getErr = errors.New("access denied")
	b := newS3Backend(fake, "bucket", "")

	_, err := b.Fetch(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "s3 get object bucket=bucket")

	assert.Error(t, b.Merge(context.Background(), "u1", sampleResume()))
	assert.Empty(t, fake.puts)
}

func TestMirror(t *testing.T) {
	ctx := context.Background()
	primary := NewMemoryBackend()
	replica := NewMemoryBackend()
	m := NewMirror(primary, replica)

	require.NoError(t, m.Merge(ctx, "u1", sampleResume()))
	assert.Equal(t, 1, primary.Merges())
	assert.Equal(t, 1, replica.Merges())

	got, err := m.Fetch(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.PersonalInfo.FullName)

	t.Run("replica failure is reported", func(t *testing.T) {
		replica.MergeErr = errors.New("replica down")
		defer func() { replica.MergeErr = nil }()

		err := m.Merge(ctx, "u1", sampleResume())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "replica 0")
		assert.Equal(t, 2, primary.Merges())
	})

	t.Run("fetch reads primary only", func(t *testing.T) {
		require.NoError(t, replica.Merge(ctx, "only-replica", sampleResume()))
		_, err := m.Fetch(ctx, "only-replica")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
