package sh

import (
	"fmt"
	"os"

	"github.com/pkg/sftp"
	"github.com/wal-g/pitr-resolver/pkg/storages/storage"
	"golang.org/x/crypto/ssh"
)

const (
	PortSetting           = "SSH_PORT"
	PasswordSetting       = "SSH_PASSWORD"
	UsernameSetting       = "SSH_USERNAME"
	PrivateKeyPathSetting = "SSH_PRIVATE_KEY_PATH"
)

var SettingList = []string{
	PortSetting,
	PasswordSetting,
	UsernameSetting,
	PrivateKeyPathSetting,
}

const defaultPort = "22"

type Config struct {
	Host           string
	Port           string
	RootPath       string
	User           string
	Password       string
	PrivateKeyPath string
}

type Storage struct {
	rootFolder storage.Folder
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

func (s *Storage) RootFolder() storage.Folder {
	return s.rootFolder
}

func (s *Storage) Close() error {
	if err := s.sftpClient.Close(); err != nil {
		return fmt.Errorf("close SFTP client: %w", err)
	}
	return s.sshClient.Close()
}

func ConfigureStorage(prefix string, settings map[string]string) (*Storage, error) {
	host, folderPath, err := storage.ParsePrefixAsURL(prefix)
	if err != nil {
		return nil, fmt.Errorf("parse SSH storage prefix %q: %w", prefix, err)
	}

	port := defaultPort
	if p, ok := settings[PortSetting]; ok && p != "" {
		port = p
	}

	config := &Config{
		Host:           host,
		Port:           port,
		RootPath:       folderPath,
		User:           settings[UsernameSetting],
		Password:       settings[PasswordSetting],
		PrivateKeyPath: settings[PrivateKeyPathSetting],
	}

	st, err := NewStorage(config)
	if err != nil {
		return nil, fmt.Errorf("create SSH storage: %w", err)
	}
	return st, nil
}

func NewStorage(config *Config) (*Storage, error) {
	authMethods, err := authMethods(config)
	if err != nil {
		return nil, err
	}

	sshConfig := &ssh.ClientConfig{
		User:            config.User,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	address := fmt.Sprint(config.Host, ":", config.Port)
	sshClient, err := ssh.Dial("tcp", address, sshConfig)
	if err != nil {
		return nil, NewFolderError(err, "Fail connect via ssh. Address: %s", address)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, NewFolderError(err, "Fail connect via sftp. Address: %s", address)
	}

	return &Storage{
		rootFolder: NewFolder(extend(sftpClient), config.RootPath),
		sshClient:  sshClient,
		sftpClient: sftpClient,
	}, nil
}

func authMethods(config *Config) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod
	if config.PrivateKeyPath != "" {
		pkey, err := os.ReadFile(config.PrivateKeyPath)
		if err != nil {
			return nil, NewFolderError(err, "Unable to read private key: %v", err)
		}

		signer, err := ssh.ParsePrivateKey(pkey)
		if err != nil {
			return nil, NewFolderError(err, "Unable to parse private key: %v", err)
		}

		methods = append(methods, ssh.PublicKeys(signer))
	}

	if config.Password != "" {
		methods = append(methods, ssh.Password(config.Password))
	}
	return methods, nil
}
