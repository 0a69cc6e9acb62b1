package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	values map[string]string
	err    error
	calls  int
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	const arn = "arn:aws:secretsmanager:us-east-1:123456789012:secret:rpc-url"

	tests := []struct {
		name      string
		arnEnv    string
		fallback  string
		fake      *fakeSecrets
		want      string
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "reads secret by ARN",
			arnEnv:    arn,
			fallback:  "http://fallback",
			fake:      &fakeSecrets{values: map[string]string{arn: "https://mainnet.example/v3/key"}},
			want:      "https://mainnet.example/v3/key",
			wantCalls: 1,
		},
		{
			name:      "falls back when lookup fails",
			arnEnv:    arn,
			fallback:  "http://fallback",
			fake:      &fakeSecrets{err: errors.New("access denied")},
			want:      "http://fallback",
			wantCalls: 1,
		},
		{
			name:     "uses env var when ARN unset",
			fallback: "http://localhost:8545",
			fake:     &fakeSecrets{},
			want:     "http://localhost:8545",
		},
		{
			name:    "errors when nothing is configured",
			fake:    &fakeSecrets{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_RPC_URL_ARN", tt.arnEnv)
			t.Setenv("TEST_RPC_URL", tt.fallback)

			client := NewSecretsManagerClientWithAPI(tt.fake)
			got, err := client.GetSecretString(context.Background(), "TEST_RPC_URL_ARN", "TEST_RPC_URL")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_RPC_URL_ARN")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.fake.calls)
		})
	}
}
