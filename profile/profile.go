package profile

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Profile is the identity content the interpreter serves: who the
// terminal claims to be and where the canned blurbs point.
type Profile struct {
	Name     string `mapstructure:"name"`
	Handle   string `mapstructure:"handle"`
	Role     string `mapstructure:"role"`
	Location string `mapstructure:"location"`
	Email    string `mapstructure:"email"`
	GitHub   string `mapstructure:"github"`
	LinkedIn string `mapstructure:"linkedin"`
	Prompt   string `mapstructure:"prompt"`
	WorkDir  string `mapstructure:"workdir"`
}

// Default returns the compiled-in profile.
func Default() Profile {
	return Profile{
		Name:     "Yagiz Kilicarslan",
		Handle:   "yagizklc",
		Role:     "Software engineer. Mostly backend, mostly Go.",
		Location: "Berlin, Germany",
		Email:    "yagizklc@proton.me",
		GitHub:   "https://github.com/yagizklc",
		LinkedIn: "https://linkedin.com/in/yagizklc",
		Prompt:   "visitor@yagizklc.dev:~$",
		WorkDir:  "/home/yagizklc",
	}
}

// Load returns the default profile with any overrides found in an
// optional .portfolio.yaml in the home directory or the current one.
// A missing config file is not an error.
func Load() (Profile, error) {
	p := Default()

	viper.SetConfigName(".portfolio") // .yaml is implicit
	viper.SetEnvPrefix("PORTFOLIO")
	viper.AutomaticEnv()

	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return p, err
		}
	}

	if err := viper.Unmarshal(&p); err != nil {
		return p, err
	}
	return p, nil
}
