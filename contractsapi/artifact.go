package contractsapi

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/umbracle/ethgo/abi"
)

// RouterMethods are the entry points the orchestrator calls on a deployed router
var RouterMethods = []string{"initialize", "mapDomains", "enrollRemoteRouter", "estimateFees", "send"}

type HexArtifact struct {
	ContractName     string   `json:"contractName"`
	Abi              *abi.ABI `json:"abi"`
	ByteCode         string   `json:"bytecode"`
	DeployedBytecode string   `json:"deployedBytecode"`
}

// Artifact is a compiled contract as produced by the hardhat / foundry toolchains
type Artifact struct {
	ContractName     string
	Abi              *abi.ABI
	Bytecode         []byte
	DeployedBytecode []byte
}

// DecodeArtifact unmarshals provided raw json content into an Artifact instance
func DecodeArtifact(data []byte) (*Artifact, error) {
	var hexRes HexArtifact
	if err := json.Unmarshal(data, &hexRes); err != nil {
		return nil, fmt.Errorf("artifact found but no correct format: %w", err)
	}

	bytecode, err := decodeHex(hexRes.ByteCode)
	if err != nil {
		return nil, fmt.Errorf("artifact bytecode: %w", err)
	}

	if len(bytecode) == 0 {
		return nil, errors.New("artifact has no creation bytecode")
	}

	deployed, err := decodeHex(hexRes.DeployedBytecode)
	if err != nil {
		return nil, fmt.Errorf("artifact deployed bytecode: %w", err)
	}

	return &Artifact{
		ContractName:     hexRes.ContractName,
		Abi:              hexRes.Abi,
		Bytecode:         bytecode,
		DeployedBytecode: deployed,
	}, nil
}

// LoadArtifactFromFile reads SC artifact file content and decodes it into an Artifact instance
func LoadArtifactFromFile(fileName string) (*Artifact, error) {
	jsonRaw, err := os.ReadFile(filepath.Clean(fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact from file '%s': %w", fileName, err)
	}

	return DecodeArtifact(jsonRaw)
}

// LoadRouterArtifact loads the router artifact and checks that its ABI exposes every router entry point
func LoadRouterArtifact(fileName string) (*Artifact, error) {
	artifact, err := LoadArtifactFromFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := artifact.RequireMethods(RouterMethods...); err != nil {
		return nil, fmt.Errorf("artifact '%s': %w", fileName, err)
	}

	return artifact, nil
}

// RequireMethods ensures the artifact ABI declares all of the given methods.
// An artifact without ABI is accepted as is (bytecode only).
func (a *Artifact) RequireMethods(names ...string) error {
	if a.Abi == nil {
		return nil
	}

	var missing []string

	for _, name := range names {
		if a.Abi.GetMethod(name) == nil {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("abi is missing methods: %s", strings.Join(missing, ", "))
	}

	return nil
}

func decodeHex(str string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(str, "0x"))
}
